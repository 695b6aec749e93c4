package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/shop-service/internal/app"
	"github.com/SergeyBogomolovv/shop-service/internal/config"
	"github.com/SergeyBogomolovv/shop-service/internal/handler"
	"github.com/SergeyBogomolovv/shop-service/internal/mongo"
	"github.com/SergeyBogomolovv/shop-service/internal/repo"
	"github.com/SergeyBogomolovv/shop-service/internal/service"
	"github.com/SergeyBogomolovv/shop-service/pkg/session"
	"github.com/SergeyBogomolovv/shop-service/pkg/tracing"

	"github.com/joho/godotenv"
)

// @title           Shop Service API
// @version         1.0
// @description     HTTP API for orders, addresses, wishlists and the product catalog
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, logger, conf.Env, conf.Tracing)
	panicIfErr("failed to init tracing", err)

	client, err := mongo.New(ctx, conf.Mongo)
	panicIfErr("failed to connect to mongo", err)
	logger.Info("mongo connected", slog.String("database", conf.Mongo.Database))

	store := repo.NewMongoRepo(client.Database(conf.Mongo.Database))
	sessions := session.NewManager(conf.Session.Secret, conf.Session.TTL)

	orderService := service.NewOrderService(logger, store)
	addressService := service.NewAddressService(logger, store, repo.NewID)
	userWishlistService := service.NewUserWishlistService(logger, store, store)
	wishlistService := service.NewWishlistService(logger, store, store)
	catalogService := service.NewCatalogService(logger, store)
	authService := service.NewAuthService(logger, store, sessions)

	handler.RegisterMetrics()

	srv := app.New(logger, conf, sessions)

	srv.SetHTTPHandlers(
		handler.NewOrderHandler(logger, orderService),
		handler.NewAddressHandler(logger, addressService),
		handler.NewWishlistHandler(logger, userWishlistService, "/users/wishlist", "user"),
		handler.NewWishlistHandler(logger, wishlistService, "/wishlist", "standalone"),
		handler.NewCatalogHandler(logger, catalogService),
		handler.NewAuthHandler(logger, authService, conf.Env == "production"),
	)
	if conf.Kafka.Enabled {
		srv.SetConsumers(handler.NewCheckoutConsumer(logger, conf.Kafka, orderService))
	}
	srv.SetStarters(app.StarterFunc(store.EnsureIndexes))
	srv.OnStop(client.Disconnect, shutdownTracing)

	panicIfErr("failed to start app", srv.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", srv.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
