// Package store selects and opens the inventory backend named in configuration.
package store

import (
	"context"
	"fmt"
	"time"

	"garment-stock/core/database"
	"garment-stock/core/mongodb"
	"garment-stock/core/reconcile"
	"garment-stock/core/redisdb"
	"garment-stock/feature/inventory/store/document"
	"garment-stock/feature/inventory/store/keyvalue"
	"garment-stock/feature/inventory/store/memory"
	"garment-stock/feature/inventory/store/relational"

	"go.uber.org/zap"
)

// Backend names accepted in store.backend.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
	BackendSQL    = "sql"
)

// Config holds configuration for the inventory store.
type Config struct {
	// Backend selects the implementation (memory, redis, mongo, sql).
	Backend string `mapstructure:"backend" default:"memory"`
	// CacheTTLSeconds enables the engine's list snapshot cache when positive.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"0"`
}

// CacheTTL returns the snapshot cache lifetime.
func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// Connections carries the settings of every backend.
type Connections struct {
	Database database.Config
	Redis    redisdb.Config
	Mongo    mongodb.Config
}

// Opened is a connected backend.
type Opened struct {
	Store reconcile.Store
	// Schema is set for the sql backend so the integrity scan can inspect it.
	Schema interface {
		MissingColumns(ctx context.Context) ([]string, error)
	}
	Close func() error
}

// Open connects the configured backend.
func Open(ctx context.Context, cfg Config, conns Connections, logger *zap.Logger) (*Opened, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch cfg.Backend {
	case BackendMemory, "":
		logger.Warn("Using in-memory inventory store; data is lost on restart")
		return &Opened{Store: memory.New(), Close: func() error { return nil }}, nil

	case BackendRedis:
		rdb, err := redisdb.Connect(ctx, conns.Redis)
		if err != nil {
			return nil, err
		}
		logger.Info("Connected to Redis inventory store", zap.String("addr", conns.Redis.Addr))
		return &Opened{Store: keyvalue.New(rdb, conns.Redis.Prefix), Close: rdb.Close}, nil

	case BackendMongo:
		client, err := mongodb.Connect(ctx, conns.Mongo)
		if err != nil {
			return nil, err
		}
		s := document.New(client.Database(conns.Mongo.Database).Collection(conns.Mongo.Collection))
		if err := s.EnsureIndexes(ctx); err != nil {
			logger.Warn("Failed to create inventory indexes", zap.Error(err))
		}
		logger.Info("Connected to MongoDB inventory store",
			zap.String("database", conns.Mongo.Database),
			zap.String("collection", conns.Mongo.Collection),
		)
		return &Opened{
			Store: s,
			Close: func() error { return client.Disconnect(context.Background()) },
		}, nil

	case BackendSQL:
		db, err := database.Connect(conns.Database)
		if err != nil {
			return nil, err
		}
		s := relational.New(db)
		if err := s.Migrate(ctx); err != nil {
			return nil, err
		}
		logger.Info("Connected to SQL inventory store", zap.String("driver", conns.Database.Driver))
		return &Opened{
			Store:  s,
			Schema: s,
			Close: func() error {
				sqlDB, err := db.DB()
				if err != nil {
					return err
				}
				return sqlDB.Close()
			},
		}, nil

	default:
		return nil, fmt.Errorf("unknown store backend %q (use memory, redis, mongo or sql)", cfg.Backend)
	}
}
