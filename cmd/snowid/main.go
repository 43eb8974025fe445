package main

import (
	"os"

	"github.com/rzbill/snowid/internal/cmd/cli"
	logpkg "github.com/rzbill/snowid/pkg/log"
)

func main() {
	// Respect SNOWID_LOG_LEVEL / SNOWID_LOG_FORMAT for CLI diagnostics.
	level := os.Getenv("SNOWID_LOG_LEVEL")
	parsed, err := logpkg.ParseLevel(level)
	if err != nil || level == "" {
		parsed = logpkg.InfoLevel
	}
	var formatter logpkg.Formatter = &logpkg.TextFormatter{}
	if os.Getenv("SNOWID_LOG_FORMAT") == "json" {
		formatter = &logpkg.JSONFormatter{}
	}
	logger := logpkg.NewLogger(
		logpkg.WithLevel(parsed),
		logpkg.WithFormatter(formatter),
		logpkg.WithOutput(logpkg.NewConsoleOutput()),
	)

	// Route any stdlib logging from dependencies through our logger.
	logpkg.RedirectStdLog(logger)

	rootCmd := cli.NewRoot(logger)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
