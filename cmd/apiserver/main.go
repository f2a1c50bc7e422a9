// Command apiserver serves the AyurChem-Intelligence HTTP API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/turtacn/AyurChem-Intelligence/internal/application/analysis"
	"github.com/turtacn/AyurChem-Intelligence/internal/application/catalog"
	"github.com/turtacn/AyurChem-Intelligence/internal/config"
	"github.com/turtacn/AyurChem-Intelligence/internal/domain/herb"
	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/pubchem"
	"github.com/turtacn/AyurChem-Intelligence/internal/intelligence/compound_resolver"
	"github.com/turtacn/AyurChem-Intelligence/internal/intelligence/herb_extractor"
	"github.com/turtacn/AyurChem-Intelligence/internal/intelligence/hypothesis"
	apihttp "github.com/turtacn/AyurChem-Intelligence/internal/interfaces/http"
	"github.com/turtacn/AyurChem-Intelligence/internal/interfaces/http/handlers"
	"github.com/turtacn/AyurChem-Intelligence/internal/interfaces/http/middleware"
)

// Build-time variables injected via ldflags.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file (default: environment only)")
	addr := flag.String("addr", "", "listen address (overrides server.addr)")
	logLevel := flag.String("log-level", "", "log level (overrides log.level)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logging.SetDefault(logger)
	logger.Info("starting ayurchem api server",
		logging.String("version", version),
		logging.String("commit", commit),
		logging.String("addr", cfg.Server.Addr),
		logging.Bool("pubchem_offline", cfg.PubChem.Offline),
	)

	if err := run(cfg, logger, *configPath); err != nil {
		logger.Fatal("api server failed", logging.Err(err))
	}
	logger.Info("api server stopped")
}

func run(cfg *config.Config, logger logging.Logger, configPath string) error {
	infra, err := initInfrastructure(cfg, logger)
	if err != nil {
		return err
	}
	defer infra.Close()

	kb := herb.NewCatalog()

	var pc compound_resolver.PubChemClient
	if !cfg.PubChem.Offline {
		c, err := pubchem.NewClient(pubchem.Config{
			BaseURL:   cfg.PubChem.BaseURL,
			Timeout:   cfg.PubChem.Timeout,
			UserAgent: cfg.PubChem.UserAgent,
		}, logger, pubchem.WithObserver(infra.metrics))
		if err != nil {
			return err
		}
		pc = c
	}

	resolverOpts := []compound_resolver.Option{
		compound_resolver.WithSpacer(compound_resolver.NewSpacer(cfg.PubChem.MinInterval)),
		compound_resolver.WithObserver(infra.metrics),
		compound_resolver.WithLogger(logger),
	}
	if infra.cache != nil {
		resolverOpts = append(resolverOpts, compound_resolver.WithCache(infra.cache))
	}
	resolver, err := compound_resolver.NewResolver(pc, kb, compound_resolver.Config{
		Offline:     cfg.PubChem.Offline,
		Timeout:     cfg.PubChem.Timeout,
		MinInterval: cfg.PubChem.MinInterval,
		Concurrency: cfg.Analysis.Concurrency,
	}, resolverOpts...)
	if err != nil {
		return err
	}
	// The demo never touches the network or the cache.
	demoResolver, err := compound_resolver.NewResolver(nil, kb, compound_resolver.Config{Offline: true},
		compound_resolver.WithObserver(infra.metrics))
	if err != nil {
		return err
	}

	analysisSvc, err := analysis.NewService(analysis.Deps{
		KnowledgeBase: kb,
		Extractor:     herb_extractor.NewExtractor(kb, herb_extractor.WithLogger(logger)),
		Resolver:      resolver,
		DemoResolver:  demoResolver,
		Generator:     hypothesis.NewGenerator(),
		Graph:         infra.graph,
		Publisher:     infra.publisher,
		Topic:         cfg.Kafka.Topic,
		Metrics:       infra.metrics,
		Logger:        logger,
		TagSource:     cfg.Analysis.TagSource,
	})
	if err != nil {
		return err
	}
	catalogSvc := catalog.NewService(kb, infra.graph, resolver, logger)

	health := handlers.NewHealthHandler(version, infra.checkers...).
		WithObserver(infra.metrics.SetDependencyUp)

	routerCfg := apihttp.RouterConfig{
		AnalysisHandler: handlers.NewAnalysisHandler(analysisSvc, logger, cfg.Server.MaxBodySize),
		HerbHandler:     handlers.NewHerbHandler(catalogSvc, logger),
		HealthHandler:   health,
		Logger:          logger,
		CORS: &middleware.CORSConfig{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			AllowedMethods: cfg.CORS.AllowedMethods,
			AllowedHeaders: middleware.DefaultCORSConfig().AllowedHeaders,
			ExposedHeaders: middleware.DefaultCORSConfig().ExposedHeaders,
			MaxAge:         cfg.CORS.MaxAge,
		},
		Logging: middleware.DefaultLoggingConfig(),
	}
	if cfg.Metrics.Enabled {
		routerCfg.Metrics = infra.metrics
		routerCfg.MetricsHandler = infra.metricsHandler
		routerCfg.MetricsPath = cfg.Metrics.Path
	}

	srv := apihttp.NewServer(apihttp.ServerConfig{
		Addr:            cfg.Server.Addr,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, apihttp.NewRouter(routerCfg), logger)

	if configPath != "" {
		watchLogLevel(configPath, logger)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutdown signal received", logging.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout+5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// watchLogLevel applies log.level changes from the config file without a
// restart.  Every other setting needs one.
func watchLogLevel(path string, logger logging.Logger) {
	setter, ok := logger.(logging.LevelSetter)
	if !ok {
		return
	}
	err := config.Watch(path, func(c *config.Config) {
		setter.SetLevel(c.Log.Level)
		logger.Info("log level reloaded", logging.String("level", c.Log.Level))
	}, func(err error) {
		logger.Warn("ignoring invalid config change", logging.Err(err))
	})
	if err != nil {
		logger.Warn("config watch disabled", logging.Err(err))
	}
}

//Personal.AI order the ending
