// Package logger builds the zap logger used across the service.
//
// Level "debug" selects zap's development preset; every other level uses the
// production preset. Format "console" switches to a colored human-readable
// encoder, anything else logs JSON.
//
// Request handlers attach the request's ray id with WithRayID so every line
// logged for one HTTP call can be correlated:
//
//	l := logger.WithRayID(log, c)
//	l.Warn("Subtract rejected", zap.Error(err))
package logger
