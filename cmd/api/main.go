package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"epic-relay-api/internal/cache"
	"epic-relay-api/internal/config"
	"epic-relay-api/internal/handler"
	"epic-relay-api/internal/repository"
	"epic-relay-api/internal/router"
	"epic-relay-api/internal/service"
	"epic-relay-api/internal/upstream"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "epic-relay-api",
	Short: "HTTP relay for the Epic Games account and party services",
	Run: func(cmd *cobra.Command, args []string) {
		serve(config.MustLoad())
	},
}

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Run a single keep-alive ping and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustLoad()
		if cfg.KeepAlive.URL == "" {
			return fmt.Errorf("KEEPALIVE_URL is not set")
		}

		k := service.NewKeepAlive(upstream.NewClient(cfg.Upstream.Timeout), service.KeepAliveConfig{
			URL:     cfg.KeepAlive.URL,
			Timeout: cfg.KeepAlive.Timeout,
		})

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.KeepAlive.Timeout)
		defer cancel()

		status, err := k.PingNow(ctx)
		if err != nil {
			return err
		}
		log.Printf("processed %d", status)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP relay (default)",
		Run:   rootCmd.Run,
	})
	rootCmd.AddCommand(pingCmd)
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("rootCmd.Execute: %v", err)
	}
}

func serve(cfg *config.Config) {
	log.Printf("Starting %s %s...", cfg.App.Name, cfg.App.Version)
	log.Printf("Environment: %s", cfg.App.Environment)

	client := upstream.NewClient(cfg.Upstream.Timeout)

	// Remote service gateways
	accountRepo := repository.NewHTTPAccountRepository(client, cfg.Upstream.AccountURL, cfg.Upstream.ClientCredentials)
	catalogRepo := repository.NewHTTPCatalogRepository(client, cfg.Upstream.CatalogURL)
	partyRepo := repository.NewHTTPPartyRepository(client, cfg.Upstream.PartyURL)

	// Optional cosmetic lookup cache
	var cosmeticCache cache.CosmeticCache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Addr:     cfg.Cache.RedisAddress(),
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		if err != nil {
			log.Printf("Warning: Redis connection failed, cosmetic cache disabled: %v", err)
		} else {
			cosmeticCache = redisCache
			log.Println("Redis cosmetic cache initialized")
		}
	case "memory":
		cosmeticCache = cache.NewMemoryCache()
		log.Println("Memory cosmetic cache initialized")
	}
	if cosmeticCache != nil {
		defer cosmeticCache.Close()
	}

	// Initialize services
	var resolver *service.CosmeticResolver
	if cosmeticCache != nil {
		resolver = service.NewCosmeticResolverWithCache(catalogRepo, cosmeticCache, cfg.Cache.TTL)
	} else {
		resolver = service.NewCosmeticResolver(catalogRepo)
	}
	accountService := service.NewAccountService(accountRepo, cfg.Upstream.LoginURL)
	equipService := service.NewEquipService(resolver, service.NewPartyService(partyRepo), cfg.Cosmetic.StrictLookup)

	// Create router
	r := router.New(router.Config{
		Handler:         handler.New(cfg.App.Name, cfg.App.Version),
		AccountHandler:  handler.NewAccountHandler(accountService),
		CosmeticHandler: handler.NewCosmeticHandler(equipService),
		StaticDir:       cfg.Server.StaticDir,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Printf("API running on %s", cfg.Server.Address())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Self-ping to prevent host spin-down
	var keepAlive *service.KeepAlive
	if cfg.KeepAlive.Enabled() {
		keepAlive = service.NewKeepAlive(client, service.KeepAliveConfig{
			URL:      cfg.KeepAlive.URL,
			Interval: cfg.KeepAlive.Interval,
			Timeout:  cfg.KeepAlive.Timeout,
		})
		keepAlive.Start()
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if keepAlive != nil {
		keepAlive.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
