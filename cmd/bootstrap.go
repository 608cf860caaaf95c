package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"garment-stock/core/config"
	"garment-stock/core/logger"
	"garment-stock/core/reconcile"
	"garment-stock/feature/inventory/store"

	"go.uber.org/zap"
)

// runtime is what every command needs: configuration, a logger and an
// engine over the configured store.
type runtime struct {
	cfg    *config.Config
	log    *zap.Logger
	store  *store.Opened
	engine *reconcile.Engine
}

// bootstrap loads configuration and opens the configured store.
// The caller must call close.
func bootstrap(ctx context.Context) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	opened, err := store.Open(ctx, cfg.Store, cfg.Connections(), l)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Store.Backend, err)
	}

	return &runtime{
		cfg:    cfg,
		log:    l,
		store:  opened,
		engine: reconcile.NewEngine(opened.Store, l, cfg.Store.CacheTTL()),
	}, nil
}

func (r *runtime) close() {
	if err := r.store.Close(); err != nil {
		r.log.Warn("Failed to close store", zap.Error(err))
	}
	_ = r.log.Sync()
}

// confirmDestructiveAction prompts the user for confirmation unless yes is set.
func confirmDestructiveAction(yes bool) bool {
	if yes {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to confirm destructive actions: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(response)
	return response == "yes"
}
