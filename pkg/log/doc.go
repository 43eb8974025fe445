// Package log provides Snowid's structured logging facade.
//
// # Overview
//
// The package exposes a small Logger interface with leveled methods and a
// Field type for structured context. Internally it is backed by Go's
// standard library slog via a custom handler that routes records through a
// Formatter/Output pipeline, so output stays consistent while remaining
// compatible with the slog ecosystem.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormatter(&log.TextFormatter{}),
//	    log.WithOutput(log.NewConsoleOutput()),
//	)
//	l = l.WithComponent("cli")
//	l.Info("minted identifiers", log.Int("count", 3))
//
// # Interop
//
// To integrate with libraries logging through the standard library's global
// logger, use RedirectStdLog.
package log
