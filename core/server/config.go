package server

import "crypto/subtle"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key accepted in the X-API-Key header.
	ApiKey string `mapstructure:"api_key" default:""`
	// ClearPin gates the bulk clear operation. Empty disables clearing over HTTP.
	ClearPin string `mapstructure:"clear_pin" default:""`
	// AllowOrigins is the CORS allow list.
	AllowOrigins string `mapstructure:"allow_origins" default:"*"`
}

// ClearEnabled reports whether a clear PIN is configured.
func (c Config) ClearEnabled() bool {
	return c.ClearPin != ""
}

// PinMatches compares pin with the configured clear PIN in constant time.
// It is always false when clearing is disabled.
func (c Config) PinMatches(pin string) bool {
	if !c.ClearEnabled() {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(pin), []byte(c.ClearPin)) == 1
}
