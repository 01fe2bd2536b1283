package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/support-portal/backend/internal/http/dto"
	"github.com/support-portal/backend/internal/services"
)

type TrackingHandler struct {
	trackingService *services.TrackingService
	log             *zap.Logger
}

func NewTrackingHandler(trackingService *services.TrackingService, log *zap.Logger) *TrackingHandler {
	return &TrackingHandler{trackingService: trackingService, log: log}
}

// Track is the anonymous status lookup: ticket ID plus the email the ticket
// was created with, both required.
func (h *TrackingHandler) Track(c *fiber.Ctx) error {
	var req dto.TrackTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	res, err := h.trackingService.Track(c.Context(), req.TicketID, req.Email)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: res})
}
