package config

import (
	"reflect"
	"strings"

	"garment-stock/core/database"
	"garment-stock/core/logger"
	"garment-stock/core/mongodb"
	"garment-stock/core/redisdb"
	"garment-stock/core/server"
	"garment-stock/core/storage"
	"garment-stock/feature/auth"
	"garment-stock/feature/inventory/store"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Store selects the inventory backend.
	Store store.Config `mapstructure:"store"`
	// Database holds configuration for the sql backend.
	Database database.Config `mapstructure:"database"`
	// Redis holds configuration for the redis backend.
	Redis redisdb.Config `mapstructure:"redis"`
	// Mongo holds configuration for the mongo backend.
	Mongo mongodb.Config `mapstructure:"mongo"`
	// Storage holds configuration for publishing CSV exports (S3, MinIO).
	Storage storage.Config `mapstructure:"storage"`
	// Auth holds the operator account and token settings.
	Auth auth.Config `mapstructure:"auth"`
}

// Connections returns the backend settings consumed by store.Open.
func (c *Config) Connections() store.Connections {
	return store.Connections{Database: c.Database, Redis: c.Redis, Mongo: c.Mongo}
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// A missing .env is normal in production.
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
