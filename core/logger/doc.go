// Package logger builds slog loggers and provides attribute helpers used by
// the adapters in this module.
//
// The tracker core never logs. Adapters that own a Subject treat tracking as
// best-effort: when Emit fails they log the failure and carry on. They take
// a *slog.Logger through a WithLogger option and fall back to slog.Default().
//
// # Basic Usage
//
//	log := logger.New(
//		logger.WithDevelopment("demo"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	log.Warn("tracking failed",
//		logger.Component("todorepo"),
//		logger.Event("todo_inserted"),
//		logger.Error(err),
//	)
//
// # Environment Presets
//
//	logger.New(logger.WithDevelopment("demo")) // text, debug level
//	logger.New(logger.WithProduction("demo"))  // JSON, info level
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil or empty input, which slog drops,
// so they can be passed without nil checks:
//
//	log.Info("tracker stopped",
//		logger.Tracker(tracker.Handle()),
//		logger.Count("items", len(items)),
//		logger.Error(nil), // omitted
//	)
package logger
