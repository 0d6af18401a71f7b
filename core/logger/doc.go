// Package logger builds the application's zap logger.
//
// Debug level uses zap's development preset, every other level the
// production preset. Format selects JSON or colored console output.
//
// Request handlers attach the ray id set by the rayid middleware with
// WithRayID, so all lines of one request can be correlated:
//
//	l := logger.WithRayID(log, c)
//	l.Warn("Country not found", zap.String("name", name))
package logger
