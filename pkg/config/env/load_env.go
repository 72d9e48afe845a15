package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file, preferring the
// path in ENV_PATH over defaultPath. A missing file is only an error for
// local development (environment "local" or unset); elsewhere variables are
// expected to come from the process environment.
func LoadDotEnv(environment, defaultPath string) error {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		envPath = defaultPath
	}

	if err := godotenv.Load(envPath); err != nil {
		if environment == "local" || environment == "" {
			slog.Error("Failed to load environment variables in local mode", "path", envPath, "error", err)
			return err
		}
		slog.Debug("No .env file, relying on process environment", "path", envPath)
	}

	return nil
}
