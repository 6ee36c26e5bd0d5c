// Package logger builds the zap logger used across checkatron.
//
// Level selects the minimum level and, for "debug", the development preset with
// ISO8601 timestamps. Format selects console or json encoding.
//
// WithRayID attaches the request's ray id (set by the rayid middleware) to a
// logger so every line of one HTTP request can be correlated.
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	logger.WithRayID(log, c).Info("diff generated")
package logger
