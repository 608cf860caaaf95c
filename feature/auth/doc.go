// Package auth implements operator login.
//
// The account is configured rather than stored: auth.username plus a bcrypt
// hash in auth.password_hash. A successful POST /auth/login returns an HS256
// bearer token accepted by the API middleware alongside the static API key.
package auth
