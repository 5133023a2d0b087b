package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nft-reconciler/core/loader"
	"nft-reconciler/core/logger"
	"nft-reconciler/core/middleware/auth"
	"nft-reconciler/core/middleware/rayid"
	"nft-reconciler/core/reconcile"
	"nft-reconciler/core/storage"
	"nft-reconciler/core/telemetry"

	"nft-reconciler/feature/integrity"
	"nft-reconciler/feature/nfts"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "nft-reconciler/docs/swagger"
)

// @title NFT Reconciler API
// @version 1.0
// @description API for listing NFTs and reconciling them against the ownership ledger.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the reconciler HTTP server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration & Logger
		cfg, logg, err := bootstrap()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Tracing (no-op without an OTLP endpoint)
		shutdownTracing, err := telemetry.Setup(cmd.Context(), cfg.Telemetry)
		if err != nil {
			logg.Fatal("Failed to set up tracing", zap.Error(err))
		}

		// 3. Connect to Ledger (Optional)
		api := newAPIClient(cfg, logg)
		db := connectLedger(cfg, logg)

		var reconciler *reconcile.Reconciler
		if db != nil {
			reconciler = newReconciler(cfg, logg, api, db)
		}

		// 4. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		exporter := reconcile.NewExporter(store, cfg.Storage.Bucket, cfg.Storage.ReportPrefix)

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			Immutable:             true,
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(nfts.NewFeature(nfts.NewService(api, reconciler, exporter, cfg.Reconcile, logg)))
		mgr.Register(integrity.NewFeature(store, cfg.Storage.Bucket, cfg.Storage.ReportPrefix, cfg.Storage.Region, logg, db, cfg.Database.LedgerTable))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging with Ray ID
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

		// 3. Public endpoints
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

		// 4. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 5. Load Features
		loaded, err := mgr.LoadAll(app)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("addr", cfg.Server.Addr()), zap.Bool("auth", cfg.Server.AuthEnabled()))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logg.Warn("Failed to flush traces", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
