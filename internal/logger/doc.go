// Package logger provides structured logging on top of the Zap logging library.
// A process-wide sugared logger is created at init time with an atomic level,
// so the level parsed from configuration can be applied after start-up.
// Context helpers allow a request-scoped logger (for example one tagged with a
// playback session id) to flow through the controller and the media engine.
package logger
