package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/ollama"

	"qrmenu/internal/api"
	"qrmenu/internal/assistant"
	"qrmenu/internal/assistant/providers"
	"qrmenu/internal/config"
	"qrmenu/internal/database"
	"qrmenu/internal/monitoring"
	"qrmenu/internal/orders"
	"qrmenu/internal/rag"
	"qrmenu/internal/session"
	"qrmenu/internal/store"
)

var (
	port        = flag.Int("port", 0, "API server port (overrides config)")
	metricsPort = flag.Int("metrics-port", 0, "Metrics server port (overrides config)")
	configFile  = flag.String("config", "", "Path to configuration file")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *metricsPort != 0 {
		cfg.Server.MetricsPort = *metricsPort
	}

	db, err := database.Open(cfg.Database.Dialect, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := database.EnsureRestaurant(db); err != nil {
		log.Fatalf("Failed to seed restaurant profile: %v", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics := monitoring.NewMetrics(registry)

	menuStore := store.NewMenuStore(db)

	embedder, err := buildEmbedder(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize embedder: %v", err)
	}
	index := rag.NewIndex(menuStore, embedder)

	// Warm build. A failure (typically an empty menu on first boot) is
	// logged, not fatal: searches against the unbuilt index return
	// empty results and the assistant degrades gracefully.
	buildCtx, cancelBuild := context.WithTimeout(context.Background(), 5*time.Minute)
	if err := index.Rebuild(buildCtx); err != nil {
		log.Printf("Initial index build failed: %v", err)
	} else {
		log.Printf("Embedding index ready with %d documents", index.Size())
	}
	cancelBuild()

	provider, err := buildProvider(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize model provider: %v", err)
	}

	engine := assistant.NewEngine(index, menuStore, provider, metrics)
	sessions := session.NewManager()
	repo := orders.NewRepository(db, metrics)

	server := api.NewServer(cfg, db, menuStore, engine, index, sessions, repo)

	go startMetricsServer(cfg.Server.MetricsPort, registry)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server.Router(),
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
		server.Close()
	}()

	log.Printf("Starting API server on port %d", cfg.Server.Port)
	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("API server error: %v", err)
	}
}

func buildEmbedder(cfg *config.Config) (embeddings.Embedder, error) {
	opts := []ollama.Option{ollama.WithModel(cfg.Embedding.Model)}
	if cfg.Embedding.ServerURL != "" {
		opts = append(opts, ollama.WithServerURL(cfg.Embedding.ServerURL))
	}

	client, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding client: %w", err)
	}
	return embeddings.NewEmbedder(client)
}

func buildProvider(cfg *config.Config) (providers.Provider, error) {
	switch cfg.Model.Provider {
	case "azure":
		return providers.NewAzureOpenAIProvider(cfg.Model.Temperature, cfg.Model.MaxTokens)
	case "ollama", "":
		return providers.NewOllamaProvider(cfg.Model.Name, cfg.Model.ServerURL, cfg.Model.Temperature, cfg.Model.MaxTokens)
	default:
		return nil, fmt.Errorf("unknown model provider %q", cfg.Model.Provider)
	}
}

func startMetricsServer(port int, registry *prometheus.Registry) {
	metricsRouter := gin.Default()
	metricsRouter.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: metricsRouter,
	}

	log.Printf("Starting metrics server on port %d", port)
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Printf("Metrics server error: %v", err)
	}
}
