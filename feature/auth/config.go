package auth

// Config holds the single operator account and token settings.
type Config struct {
	// Username of the operator account. Empty disables login.
	Username string `mapstructure:"username" default:""`
	// PasswordHash is a bcrypt hash (see the hash-password command).
	PasswordHash string `mapstructure:"password_hash" default:""`
	// JWTSecret signs bearer tokens. Empty disables token auth.
	JWTSecret string `mapstructure:"jwt_secret" default:""`
	// TokenTTLMinutes is the token lifetime.
	TokenTTLMinutes int `mapstructure:"token_ttl_minutes" default:"480"`
}
