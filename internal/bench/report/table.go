package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Call-Path Benchmark ===\n\n")
	fmt.Fprintf(tw, "run %s, clock %s, budget %v..%v, target accuracy %.3f\n\n",
		r.Meta.RunID, r.Meta.ClockSource,
		seconds(r.Config.MinTime), seconds(r.Config.MaxTime), r.Config.Accuracy)

	header := []string{"Workload", "Time/op", "Samples", "Iterations", "Accuracy", "Slowdown", "Status"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, e := range r.Entries {
		status := "converged"
		if !e.Converged {
			status = "budget-capped"
		}
		row := []string{
			e.Name,
			timePerOp(e.WallTime),
			fmt.Sprintf("%d", e.Samples),
			fmt.Sprintf("%d", e.Iterations),
			fmt.Sprintf("%.4f", e.Accuracy),
			fmt.Sprintf("%.2fx", e.Slowdown),
			status,
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
	tw.Flush()
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// timePerOp formats a per-iteration time; durations under a nanosecond fall
// back to scientific notation rather than truncating to "0s".
func timePerOp(s float64) string {
	if s > 0 && s < 1e-9 {
		return fmt.Sprintf("%.3gs", s)
	}
	return seconds(s).String()
}
