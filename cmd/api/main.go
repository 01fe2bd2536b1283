package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/support-portal/backend/internal/config"
	"github.com/support-portal/backend/internal/db"
	"github.com/support-portal/backend/internal/events"
	apphttp "github.com/support-portal/backend/internal/http"
	"github.com/support-portal/backend/internal/http/handlers"
	"github.com/support-portal/backend/internal/mailer"
	"github.com/support-portal/backend/internal/repositories"
	"github.com/support-portal/backend/internal/services"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repositories
	ticketRepo := repositories.NewTicketRepo(pool)
	activityRepo := repositories.NewActivityRepo(pool)
	staffRepo := repositories.NewStaffRepo(pool)

	// Events
	publisher := events.NewRedisPublisher(rdb, log)
	subscriber := events.NewRedisSubscriber(rdb, log)

	// Services
	smtpMailer := mailer.New(cfg, log)
	ticketService := services.NewTicketService(ticketRepo, activityRepo, smtpMailer, publisher, log)
	trackingService := services.NewTrackingService(ticketRepo, log)
	dashboardService := services.NewDashboardService(ticketRepo, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(staffRepo, cfg, log)
	ticketHandler := handlers.NewTicketHandler(ticketService, log)
	trackingHandler := handlers.NewTrackingHandler(trackingService, log)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, log)
	wsHub := handlers.NewWSHub(cfg, subscriber, log)

	// Start WS hub
	wsHub.Start(ctx)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	apphttp.SetupRouter(app, cfg, log, rdb, authHandler, ticketHandler, trackingHandler, dashboardHandler, wsHub)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
