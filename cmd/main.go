package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/application/identity"
	"github.com/muhammadheryan/marketplace/application/notification"
	productapp "github.com/muhammadheryan/marketplace/application/product"
	transferapp "github.com/muhammadheryan/marketplace/application/transfer"
	userapp "github.com/muhammadheryan/marketplace/application/user"
	"github.com/muhammadheryan/marketplace/cmd/config"
	redisclient "github.com/muhammadheryan/marketplace/cmd/redis"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/db"
	_ "github.com/muhammadheryan/marketplace/docs"
	inventoryRepo "github.com/muhammadheryan/marketplace/repository/inventory"
	productRepo "github.com/muhammadheryan/marketplace/repository/product"
	redisRepo "github.com/muhammadheryan/marketplace/repository/redis"
	transferRepo "github.com/muhammadheryan/marketplace/repository/transfer"
	txRepo "github.com/muhammadheryan/marketplace/repository/tx"
	userRepo "github.com/muhammadheryan/marketplace/repository/user"
	"github.com/muhammadheryan/marketplace/thirdparty/mailer"
	"github.com/muhammadheryan/marketplace/thirdparty/rabbitmq"
	"github.com/muhammadheryan/marketplace/transport"
	"github.com/muhammadheryan/marketplace/utils/logger"
	validatorx "github.com/muhammadheryan/marketplace/utils/validator"
	"go.uber.org/zap"
)

// @title MARKETPLACE API
// @version 1.0
// @description Marketplace product transfer API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	validatorx.Init()

	logger.Info("Starting server",
		zap.String("env", cfg.Environment),
		zap.String("db_driver", cfg.Database.Driver),
		zap.String("identity_mode", cfg.Identity.Mode))

	// Connect to database
	conn, err := db.Open(cfg.Database.Driver, cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Set database connection pool settings, sqlite keeps its single connection
	if cfg.Database.Driver == constant.DriverMySQL {
		conn.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		conn.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		conn.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	}

	if cfg.Database.AutoMigrate {
		if err := db.EnsureSchema(conn); err != nil {
			logger.Fatal("err ensure schema", zap.Error(err))
		}
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(conn)
	UserRepo := userRepo.NewUserRepository(conn)
	RedisRepo := redisRepo.NewRepository()
	ProductRepo := productRepo.NewProductRepository(conn)
	InventoryRepo := inventoryRepo.NewInventoryRepository(conn)
	TransferRepo := transferRepo.NewTransferRepository(conn)

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	ProductApp := productapp.NewProductApp(TxRepo, ProductRepo, InventoryRepo)

	var resolver identity.Resolver
	if cfg.Identity.Mode == constant.IdentityModeRemote {
		resolver = identity.NewRemoteResolver(cfg.Identity.AuthServiceURL, cfg.Auth.InternalAPIKey, cfg.Identity.Timeout)
	} else {
		resolver = identity.NewLocalResolver(UserApp)
	}

	var mail notification.Mailer
	if cfg.Mail.Mode == constant.MailModeSMTP {
		mail = mailer.NewSMTPMailer(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.User, cfg.Mail.Password, cfg.Mail.From)
	} else {
		mail = mailer.NewLogMailer()
	}
	dispatcher := notification.NewDispatcher(resolver, mail)

	notifier, stopNotifier := newNotifier(cfg, dispatcher)

	TransferApp := transferapp.NewTransferApp(TxRepo, TransferRepo, InventoryRepo, ProductRepo, notifier)

	httpTransport := transport.NewTransport(UserApp, ProductApp, TransferApp, transport.Options{
		Resolver:       resolver,
		InternalAPIKey: cfg.Auth.InternalAPIKey,
		RequestTimeout: cfg.Server.RequestTimeout,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	// dependencies close in order: stop taking requests, drain notifications, then storage
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.Server.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"marketplace": func(ctx context.Context) error {
				logger.Info("Graceful shutdown initiated")
				err := server.Shutdown(ctx)
				stopNotifier(ctx)
				closeStorage(conn)
				return err
			},
		},
	)

	exitCode := <-wait
	logger.Info("Server exited", zap.Int("code", exitCode))
	_ = logger.Close()
	os.Exit(exitCode)
}

// newNotifier publishes through RabbitMQ when enabled and dispatches in-process otherwise.
// The returned stop func drains whichever was started.
func newNotifier(cfg *config.Config, dispatcher *notification.Dispatcher) (notification.Notifier, func(context.Context)) {
	async := notification.NewAsyncNotifier(dispatcher)
	if !cfg.RabbitMQ.Enabled {
		return async, func(ctx context.Context) {
			if err := async.Wait(ctx); err != nil {
				logger.Warn("pending notifications dropped", zap.Error(err))
			}
		}
	}

	publisher, err := rabbitmq.NewPublisher(cfg.GetRabbitMQURL(), cfg.RabbitMQ.PublishTimeout)
	if err != nil {
		logger.Fatal("err connect rabbitmq publisher", zap.Error(err))
	}

	consumer, err := rabbitmq.NewConsumer(cfg.GetRabbitMQURL(), dispatcher, cfg.Mail.Timeout)
	if err != nil {
		logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
	}

	consumerCtx, cancelConsumer := context.WithCancel(context.Background())
	if err := consumer.Start(consumerCtx); err != nil {
		logger.Fatal("err start rabbitmq consumer", zap.Error(err))
	}
	logger.Info("RabbitMQ notifications enabled", zap.String("host", cfg.RabbitMQ.Host))

	return publisher, func(context.Context) {
		cancelConsumer()
		_ = consumer.Close()
		_ = publisher.Close()
	}
}

func closeStorage(conn *sqlx.DB) {
	if err := redisclient.Close(); err != nil {
		logger.Warn("err close redis", zap.Error(err))
	}
	if err := conn.Close(); err != nil {
		logger.Warn("err close db", zap.Error(err))
	}
}
