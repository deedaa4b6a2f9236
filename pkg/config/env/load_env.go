package env

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/ledger-explorer/pkg/stringsutil"
	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from .env files without overriding
// variables already set. ENV_PATH may list several files, comma-separated;
// otherwise defaultPath is used. A missing file is only an error when env is
// "local" or empty.
func LoadDotEnv(env string, defaultPath string) error {
	paths := stringsutil.SplitList(os.Getenv("ENV_PATH"))
	if len(paths) == 0 {
		slog.Info("ENV_PATH is not set, using default path", "defaultPath", defaultPath)
		paths = []string{defaultPath}
	}

	if err := godotenv.Load(paths...); err != nil {
		if env == "local" || env == "" {
			slog.Error("Failed to load environment variables in local mode", "paths", paths, "error", err)
			return err
		}
		slog.Debug("Skipping .env ...", "env", env)
	}

	return nil
}
