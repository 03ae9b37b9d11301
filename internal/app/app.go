package app

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	httpapi "github.com/shestoi/GoBigTech/warehouse/internal/api/http"
	"github.com/shestoi/GoBigTech/warehouse/internal/config"
	eventkafka "github.com/shestoi/GoBigTech/warehouse/internal/event/kafka"
	"github.com/shestoi/GoBigTech/warehouse/internal/repository"
	"github.com/shestoi/GoBigTech/warehouse/internal/repository/memory"
	mongorepo "github.com/shestoi/GoBigTech/warehouse/internal/repository/mongo"
	"github.com/shestoi/GoBigTech/warehouse/internal/service"
	platformhealth "github.com/shestoi/GoBigTech/warehouse/platform/health/http"
	platformlogging "github.com/shestoi/GoBigTech/warehouse/platform/logging"
	platformobservability "github.com/shestoi/GoBigTech/warehouse/platform/observability"
	platformshutdown "github.com/shestoi/GoBigTech/warehouse/platform/shutdown"
)

const serviceName = "warehouse"

// App содержит все зависимости для запуска и корректного shutdown Warehouse Service
type App struct {
	logger      *zap.Logger
	httpServer  *http.Server
	shutdownMgr *platformshutdown.Manager
	wg          sync.WaitGroup
}

// Build создаёт и настраивает все зависимости Warehouse Service
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	const op = "app.Build"

	logger, err := platformlogging.New(platformlogging.Config{
		ServiceName: serviceName,
		Env:         string(cfg.AppEnv),
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
	})
	if err != nil {
		return nil, err
	}

	cfg.Log(logger)
	logger.Info("Building Warehouse service", zap.String("op", op), zap.String("http_addr", cfg.HTTPAddr))

	shutdownMgr := platformshutdown.New(cfg.ShutdownTimeout, logger)

	// OpenTelemetry до HTTP middleware, иначе tracer возьмётся из noop provider
	otelShutdown, err := platformobservability.Init(ctx, platformobservability.Config{
		Enabled:               cfg.OTelEnabled,
		OTLPEndpoint:          cfg.OTelEndpoint,
		SamplingRatio:         cfg.OTelSamplingRatio,
		ServiceName:           serviceName,
		DeploymentEnvironment: string(cfg.AppEnv),
	})
	if err != nil {
		return nil, err
	}
	shutdownMgr.Add("otel", otelShutdown)

	repo, readiness, err := buildRepository(ctx, cfg, logger, shutdownMgr)
	if err != nil {
		shutdownMgr.Shutdown()
		return nil, err
	}

	var publisher service.ItemEventPublisher
	if cfg.Kafka.Enabled {
		logger.Info("Kafka item events enabled",
			zap.Strings("brokers", cfg.Kafka.Brokers),
			zap.String("topic", cfg.Kafka.Topic))
		kafkaPublisher := eventkafka.NewKafkaItemEventPublisher(logger, cfg.Kafka)
		shutdownMgr.Add("kafka_writer", platformshutdown.Close(kafkaPublisher))
		publisher = kafkaPublisher
	}

	inventoryService := service.NewInventoryService(repo, publisher, logger)

	var tagOpts []service.TagOption
	if cfg.TagsOwnerScoped {
		tagOpts = append(tagOpts, service.WithOwnerScope())
	}
	tagService := service.NewTagService(repo, tagOpts...)

	handler := httpapi.NewHandler(inventoryService, tagService, logger)
	router := httpapi.NewRouter(handler, readiness, logger)

	// WriteTimeout выше обычного: списки отдаются потоком
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	shutdownMgr.Add("http_server", platformshutdown.ShutdownHTTPServer(httpServer))

	return &App{
		logger:      logger,
		httpServer:  httpServer,
		shutdownMgr: shutdownMgr,
	}, nil
}

func buildRepository(ctx context.Context, cfg config.Config, logger *zap.Logger, shutdownMgr *platformshutdown.Manager) (repository.ItemRepository, platformhealth.ReadinessFunc, error) {
	if cfg.Storage == config.StorageMemory {
		logger.Warn("Using in-memory storage, data is lost on restart")
		return memory.NewMemoryRepository(), nil, nil
	}

	logger.Info("Connecting to MongoDB", zap.String("db", cfg.MongoDBName), zap.String("collection", cfg.MongoCollection))
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongorepo.Connect(connectCtx, cfg.MongoURI)
	if err != nil {
		return nil, nil, err
	}
	shutdownMgr.Add("mongo_client", platformshutdown.DisconnectMongo(client))
	logger.Info("MongoDB connection established")

	readiness := func(ctx context.Context) error {
		return client.Ping(ctx, nil)
	}

	return mongorepo.NewRepository(client, cfg.MongoDBName, cfg.MongoCollection), readiness, nil
}

// Run запускает сервис и блокируется до получения сигнала shutdown или отмены ctx
func (a *App) Run(ctx context.Context) error {
	defer platformlogging.Sync(a.logger)

	a.logger.Info("Starting Warehouse service", zap.String("addr", a.httpServer.Addr))
	a.logger.Info("Health check available", zap.String("url", "http://"+a.httpServer.Addr+"/health"))

	waitCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// ошибка ListenAndServe (например занятый порт) тоже запускает shutdown
	var serveErr error
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("HTTP server error", zap.Error(err))
			serveErr = err
			cancel()
		}
	}()

	a.shutdownMgr.WaitContext(waitCtx)

	a.wg.Wait()
	a.logger.Info("Warehouse service stopped")
	return serveErr
}
