package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"garment-stock/core/config"
	"garment-stock/core/loader"
	"garment-stock/core/logger"
	"garment-stock/core/middleware"
	"garment-stock/core/reconcile"
	"garment-stock/core/storage"
	"garment-stock/core/token"
	"garment-stock/core/ws"
	"garment-stock/feature/auth"
	"garment-stock/feature/integrity"
	"garment-stock/feature/inventory"
	"garment-stock/feature/inventory/store"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "garment-stock/docs/swagger"
)

// @title Garment Stock API
// @version 1.0
// @description API for managing a garment inventory.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the inventory server",
	Long:  `Starts the HTTP server, opens the configured store and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Open the inventory store
		opened, err := store.Open(ctx, cfg.Store, cfg.Connections(), logg)
		if err != nil {
			logg.Fatal("Failed to open inventory store", zap.String("backend", cfg.Store.Backend), zap.Error(err))
		}
		defer func() {
			if err := opened.Close(); err != nil {
				logg.Warn("Failed to close store", zap.Error(err))
			}
		}()
		engine := reconcile.NewEngine(opened.Store, logg, cfg.Store.CacheTTL())

		// 4. Object storage for published exports (optional)
		var objects storage.Client
		if cfg.Storage.Enabled() {
			if objects, err = storage.NewClient(cfg.Storage); err != nil {
				logg.Warn("CSV publishing disabled", zap.Error(err))
				objects = nil
			}
		}

		// 5. Live updates
		hub := ws.NewHub(logg)
		go hub.Run(ctx)

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		tokens := token.NewIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)
		authService := auth.NewService(cfg.Auth, tokens, logg)
		inventoryService := inventory.NewService(engine, objects, cfg.Storage, hub, logg)

		// Public features are loaded before the auth middleware.
		public := loader.NewManager()
		public.Register(auth.NewFeature(authService))

		protected := loader.NewManager()
		protected.Register(inventory.NewFeature(inventoryService, cfg.Server))
		protected.Register(integrity.NewFeature(integrity.NewService(engine, opened.Schema, logg)))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(middleware.RayID())
		app.Use(cors.New(cors.Config{AllowOrigins: cfg.Server.AllowOrigins}))

		// 2. Request logging with the ray id
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 4. Websocket notifications (Public, read-only)
		app.Use("/ws", func(c *fiber.Ctx) error {
			if websocket.IsWebSocketUpgrade(c) {
				return c.Next()
			}
			return fiber.ErrUpgradeRequired
		})
		app.Get("/ws", websocket.New(hub.Serve))

		if _, err := public.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 5. Auth (Protect API)
		if cfg.Server.ApiKey == "" && !tokens.Enabled() {
			logg.Warn("No API key or JWT secret configured; the API is unprotected")
		}
		app.Use(middleware.RequireAuth(cfg.Server.ApiKey, tokens))

		loaded, err := protected.LoadAll(app)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("features", loaded), zap.String("backend", cfg.Store.Backend))

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		cancel()
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
