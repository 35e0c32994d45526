package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/route-service/internal/api/http"
	"github.com/spec-kit/route-service/internal/api/http/handlers"
	"github.com/spec-kit/route-service/internal/auth"
	"github.com/spec-kit/route-service/internal/config"
	"github.com/spec-kit/route-service/internal/events"
	"github.com/spec-kit/route-service/internal/observability"
	"github.com/spec-kit/route-service/internal/persistence"
	"github.com/spec-kit/route-service/internal/repository"
	"github.com/spec-kit/route-service/internal/service"
	"github.com/spec-kit/route-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	routeRepo := repository.NewRouteRepository(pool)
	pointRepo := repository.NewRoutePointRepository(pool)
	commentRepo := repository.NewCommentRepository(pool)
	favoriteRepo := repository.NewFavoriteRepository(pool)

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	imageCache := persistence.NewImageCache(redis, cfg.Cache.ImageTTL(), logger)

	authService := service.NewAuthService(*cfg, userRepo)
	userService := service.NewUserService(*cfg, userRepo)
	routeService := service.NewRouteService(routeRepo, pointRepo, imageCache, dispatcher)
	pointService := service.NewRoutePointService(pointRepo)
	commentService := service.NewCommentService(commentRepo, dispatcher)
	favoriteService := service.NewFavoriteService(favoriteRepo, routeRepo, dispatcher)
	activityService := service.NewActivityService(dispatcher, logger, metrics)

	worker.StartActivityWorker(activityService)

	gate := auth.NewGate(authService.TokenManager(), logger)

	app := fiber.New(fiber.Config{BodyLimit: 20 * 1024 * 1024})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.CORS, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:      handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Auth:        handlers.NewAuthHandler(authService, logger),
		Users:       handlers.NewUsersHandler(userService, logger),
		Routes:      handlers.NewRoutesHandler(routeService, logger),
		RoutePoints: handlers.NewRoutePointsHandler(pointService, logger),
		Comments:    handlers.NewCommentsHandler(commentService, logger),
		Favorites:   handlers.NewFavoritesHandler(favoriteService, logger),
		Gate:        gate,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
