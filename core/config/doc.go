// Package config loads the service configuration.
//
// Values come from the environment, optionally seeded from a .env file, and
// fall back to the `default` struct tags of each section. Environment names are
// the upper-cased section and field joined by an underscore, so
// store.backend is STORE_BACKEND and database.timeout_seconds is
// DATABASE_TIMEOUT_SECONDS.
//
// # Sections
//
//   - server: port, API key, clear PIN
//   - log: level and format
//   - store: backend selection and list cache TTL
//   - database, redis, mongo: connection settings of each backend
//   - storage: S3/MinIO bucket receiving CSV exports
//   - auth: operator account and token secret
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Store.Backend)
package config
