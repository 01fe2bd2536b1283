package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/support-portal/backend/internal/config"
	"github.com/support-portal/backend/internal/http/handlers"
	"github.com/support-portal/backend/internal/middleware"
	"github.com/support-portal/backend/internal/rbac"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	authHandler *handlers.AuthHandler,
	ticketHandler *handlers.TicketHandler,
	trackingHandler *handlers.TrackingHandler,
	dashboardHandler *handlers.DashboardHandler,
	wsHub *handlers.WSHub,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Meta (public)
	metaHandler := handlers.NewMetaHandler()
	api.Get("/meta/categories", metaHandler.GetCategories)
	api.Get("/meta/templates", metaHandler.GetTemplates)

	// Anonymous surface: submit + track, rate-limited per IP.
	public := api.Group("", middleware.RateLimitMiddleware(rdb, cfg.PublicRateLimit, cfg.PublicRateWindow))
	public.Post("/auth/login", authHandler.Login)
	public.Post("/tickets", ticketHandler.CreateTicket)
	public.Post("/tickets/track", trackingHandler.Track)

	// Staff surface
	staff := api.Group("", middleware.AuthMiddleware(cfg, log), middleware.RequireCapability(rbac.CapStaff))

	staff.Get("/dashboard/metrics", dashboardHandler.Metrics)
	staff.Get("/tickets", dashboardHandler.ListTickets)
	staff.Get("/tickets/assignees", middleware.RequireCapability(rbac.CapReassign), ticketHandler.AssigneeOptions)
	staff.Get("/tickets/:id", ticketHandler.GetTicket)
	staff.Get("/tickets/:id/activity", ticketHandler.GetActivity)
	staff.Put("/tickets/:id", middleware.RequireCapability(rbac.CapEditTicket), ticketHandler.EditTicket)
	staff.Post("/tickets/:id/reply", middleware.RequireCapability(rbac.CapReply), ticketHandler.Reply)

	// WebSocket
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws", websocket.New(wsHub.HandleWS))
}
