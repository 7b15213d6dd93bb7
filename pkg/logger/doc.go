// Package logger builds *slog.Logger instances with functional options and
// provides attribute helpers that keep key names consistent.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format (JSON at INFO level on stdout by default). WithFormat panics on an
// unknown format so a bad setup fails at startup.
//
// Validators in this module only log rejected uploads, at debug level, when a
// logger is passed to them:
//
//	log := logger.New(logger.WithDebug(), logger.WithAttr(logger.Component("upload")))
//	mimes := validator.NewMIMEValidator(allowed, validator.WithLogger(log))
package logger
