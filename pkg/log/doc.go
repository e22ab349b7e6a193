// Package log provides the structured logging facade used across the
// service.
//
// The package exposes a small Logger interface with leveled methods and a
// simple Field type for structured context. Internally it is backed by Go's
// standard library slog, so output format (text or JSON) and level can be
// switched without touching call sites.
//
// Quick start
//
//	l := log.NewLogger(log.WithLevel(log.InfoLevel), log.WithFormat("text"))
//	l = l.With(log.Component("server"))
//	l.Info("server started", log.Str("addr", ":8080"))
package log
