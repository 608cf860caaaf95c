// Package server holds the HTTP server configuration.
//
// Besides the listen port and API key it carries the PIN that gates the bulk
// clear operation. PinMatches is the single place the PIN is compared.
package server
