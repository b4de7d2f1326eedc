package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	mongoadapter "github.com/neuroseid11-ship-it/PetMatch-sub000/internal/adapter/mongo"
	natsadapter "github.com/neuroseid11-ship-it/PetMatch-sub000/internal/adapter/nats"
	redisadapter "github.com/neuroseid11-ship-it/PetMatch-sub000/internal/adapter/redis"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/adapter/storage/s3"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/config"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/handler"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/mailer"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/middleware"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/platform/logger"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/router"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/usecase"
)

// App owns every long-lived component and their shutdown order.
type App struct {
	cfg         *config.Config
	log         logger.Logger
	httpServer  *http.Server
	mongoClient *mongo.Client
	redisClient *goredis.Client
	publisher   *natsadapter.Publisher
}

func New(cfg *config.Config) (*App, error) {
	log, err := logger.NewZapLogger(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log.Infof("Configuration loaded: env=%s http_port=%s", cfg.Env, cfg.HTTP.Port)

	mongoClient, err := mongoadapter.NewMongoDBConnection(&cfg.Mongo)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	log.Info("MongoDB connection established")

	redisClient, err := redisadapter.NewClient(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Info("Redis connection established")

	publisher, err := natsadapter.NewPublisher(&cfg.NATS, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	log.Info("NATS publisher ready")

	storage, err := s3.NewStorage(&cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize photo storage: %w", err)
	}

	emailSender := mailer.NewSender(&cfg.SMTP)

	// Repositories.
	dbName := cfg.Mongo.Database
	actorRepo := mongoadapter.NewActorMongoRepository(mongoClient, dbName)
	requestRepo := mongoadapter.NewRequestMongoRepository(mongoClient, dbName)
	productRepo := mongoadapter.NewProductMongoRepository(mongoClient, dbName)
	garageRepo := mongoadapter.NewGarageMongoRepository(mongoClient, dbName)
	petRepo := mongoadapter.NewPetMongoRepository(mongoClient, dbName)
	muralRepo := mongoadapter.NewMuralMongoRepository(mongoClient, dbName)
	commentRepo := mongoadapter.NewCommentMongoRepository(mongoClient, dbName)
	likeRepo := mongoadapter.NewLikeMongoRepository(mongoClient, dbName)

	cacheRepo := redisadapter.NewCacheRepository(redisClient, log)
	sessionStore := redisadapter.NewSessionStore(redisClient)

	// Usecases.
	ledgerUC := usecase.NewLedgerUsecase(actorRepo, cacheRepo, log)
	requestUC := usecase.NewRequestUsecase(requestRepo, publisher, emailSender, cfg.Auth.AdminEmail, log)
	moderationUC := usecase.NewModerationUsecase(requestRepo, garageRepo, actorRepo, petRepo, publisher, emailSender, log)
	catalogUC := usecase.NewCatalogUsecase(productRepo, garageRepo, ledgerUC, requestUC, cacheRepo, storage, publisher, log)
	profileUC := usecase.NewProfileUsecase(actorRepo, sessionStore, log,
		cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Rewards.StartingGrant)
	petUC := usecase.NewPetUsecase(petRepo, storage, log)
	muralUC := usecase.NewMuralUsecase(muralRepo, commentRepo, likeRepo, storage, log)

	handlers := router.Handlers{
		Profile:    handler.NewProfileHandler(profileUC, ledgerUC, log),
		Request:    handler.NewRequestHandler(requestUC, log),
		Moderation: handler.NewModerationHandler(moderationUC, log),
		Catalog:    handler.NewCatalogHandler(catalogUC, log),
		Pet:        handler.NewPetHandler(petUC, log),
		Mural:      handler.NewMuralHandler(muralUC, log),
	}

	var parser middleware.TokenParser = profileUC
	httpServer := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      router.New(handlers, parser, log),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	return &App{
		cfg:         cfg,
		log:         log,
		httpServer:  httpServer,
		mongoClient: mongoClient,
		redisClient: redisClient,
		publisher:   publisher,
	}, nil
}

// Run starts the HTTP server and blocks until a shutdown signal arrives,
// then drains connections and closes the backends in dependency order.
func (a *App) Run() {
	go func() {
		a.log.Infof("HTTP server listening on %s", a.httpServer.Addr)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	a.log.Infof("Received shutdown signal: %v", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.log.Errorf("HTTP server shutdown error: %v", err)
	} else {
		a.log.Info("HTTP server stopped")
	}

	a.publisher.Close()
	if err := a.redisClient.Close(); err != nil {
		a.log.Errorf("Redis close error: %v", err)
	}
	if err := a.mongoClient.Disconnect(shutdownCtx); err != nil {
		a.log.Errorf("MongoDB disconnect error: %v", err)
	}

	a.log.Info("Application shut down")
}
