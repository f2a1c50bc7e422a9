package main

import (
	"context"
	"net/http"
	"time"

	segkafka "github.com/segmentio/kafka-go"

	"github.com/turtacn/AyurChem-Intelligence/internal/config"
	neo4jdriver "github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/database/neo4j"
	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/database/neo4j/repositories"
	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/database/redis"
	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/messaging/kafka"
	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/AyurChem-Intelligence/internal/interfaces/http/handlers"
	"github.com/turtacn/AyurChem-Intelligence/pkg/errors"
)

// infrastructure holds the optional collaborators.  A collaborator that is
// disabled, or that fails to connect at startup, is replaced by its no-op
// form; a failed one still reports through readiness.
type infrastructure struct {
	metrics        *prometheus.AppMetrics
	metricsHandler http.Handler
	cache          *redis.CompoundCache
	graph          repositories.GraphStore
	publisher      kafka.Publisher
	checkers       []handlers.HealthChecker
	closers        []func() error
	logger         logging.Logger
}

func initInfrastructure(cfg *config.Config, logger logging.Logger) (*infrastructure, error) {
	infra := &infrastructure{
		graph:     repositories.NewNopGraphStore(),
		publisher: kafka.NopPublisher{},
		logger:    logger,
	}

	collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{
		Namespace:            cfg.Metrics.Namespace,
		EnableProcessMetrics: true,
		EnableGoMetrics:      true,
	}, logger)
	if err != nil {
		return nil, err
	}
	infra.metrics = prometheus.NewAppMetrics(collector)
	infra.metricsHandler = collector.Handler()

	if cfg.Redis.Enabled {
		infra.initRedis(cfg.Redis)
	}
	if cfg.Neo4j.Enabled {
		infra.initNeo4j(cfg.Neo4j)
	}
	if cfg.Kafka.Enabled {
		if err := infra.initKafka(cfg.Kafka); err != nil {
			infra.Close()
			return nil, err
		}
	}
	return infra, nil
}

func (i *infrastructure) initRedis(cfg config.RedisConfig) {
	client, err := redis.NewClient(redis.ClientConfig{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, i.logger)
	if err != nil {
		i.logger.Warn("compound cache disabled", logging.String("addr", cfg.Addr), logging.Err(err))
		i.checkers = append(i.checkers, failedChecker("redis", err))
		return
	}
	i.cache = redis.NewCompoundCache(client, i.logger, redis.WithPrefix(cfg.KeyPrefix), redis.WithTTL(cfg.TTL))
	i.checkers = append(i.checkers, handlers.CheckFunc("redis", i.cache.Ping))
	i.closers = append(i.closers, i.cache.Close)
}

func (i *infrastructure) initNeo4j(cfg config.Neo4jConfig) {
	drv, err := neo4jdriver.NewDriver(neo4jdriver.Config{
		URI:                   cfg.URI,
		User:                  cfg.User,
		Password:              cfg.Password,
		Database:              cfg.Database,
		MaxConnectionPoolSize: cfg.MaxConnectionPoolSize,
		ConnectionTimeout:     cfg.ConnectionTimeout,
	}, i.logger)
	if err != nil {
		i.logger.Warn("herb graph disabled", logging.String("uri", cfg.URI), logging.Err(err))
		i.checkers = append(i.checkers, failedChecker("neo4j", err))
		return
	}
	repo := repositories.NewHerbGraphRepo(drv, i.logger)

	timeout := cfg.ConnectionTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := repo.EnsureSchema(ctx); err != nil {
		i.logger.Warn("herb graph schema not ensured", logging.Err(err))
	}
	i.graph = repo
	i.checkers = append(i.checkers, handlers.CheckFunc("neo4j", repo.HealthCheck))
	i.closers = append(i.closers, repo.Close)
}

func (i *infrastructure) initKafka(cfg config.KafkaConfig) error {
	producer, err := kafka.NewProducer(kafka.ProducerConfig{
		Brokers:      cfg.Brokers,
		BatchTimeout: cfg.BatchTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, i.logger)
	if err != nil {
		return err
	}
	i.publisher = producer
	i.checkers = append(i.checkers, handlers.CheckFunc("kafka", func(ctx context.Context) error {
		return dialBroker(ctx, cfg.Brokers)
	}))
	i.closers = append(i.closers, producer.Close)
	return nil
}

// dialBroker succeeds when any broker accepts a connection.
func dialBroker(ctx context.Context, brokers []string) error {
	var lastErr error
	for _, b := range brokers {
		conn, err := segkafka.DialContext(ctx, "tcp", b)
		if err == nil {
			return conn.Close()
		}
		lastErr = err
	}
	return lastErr
}

// failedChecker reports a collaborator that never connected.
func failedChecker(name string, err error) handlers.HealthChecker {
	failure := errors.Unavailable(name + " unavailable").WithDetail(err.Error()).WithCause(err)
	return handlers.CheckFunc(name, func(context.Context) error { return failure })
}

// Close releases collaborators in reverse order of creation.
func (i *infrastructure) Close() {
	for n := len(i.closers) - 1; n >= 0; n-- {
		if err := i.closers[n](); err != nil {
			i.logger.Warn("close failed", logging.Err(err))
		}
	}
}

//Personal.AI order the ending
