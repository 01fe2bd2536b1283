package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/support-portal/backend/internal/http/dto"
	"github.com/support-portal/backend/internal/models"
)

type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

type ReplyTemplate struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Body  string `json:"body"`
}

// Canned reply templates offered in the staff reply form.
var replyTemplates = []ReplyTemplate{
	{
		ID:    "ticket_received",
		Label: "Ticket Received",
		Body:  "Hi,\n\nWe have received your ticket and are looking into it.\n\nBest,\nSupport Team",
	},
	{
		ID:    "more_info_needed",
		Label: "More Info Needed",
		Body:  "Hi,\n\nCould you please provide a screenshot or more details about the error?\n\nBest,\nSupport Team",
	},
	{
		ID:    "password_reset",
		Label: "Password Reset",
		Body:  "Hi,\n\nTo reset your password, please go to the login page and click 'Forgot Password'.\n\nBest,\nSupport Team",
	},
}

func (h *MetaHandler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: models.TicketCategories})
}

func (h *MetaHandler) GetTemplates(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: replyTemplates})
}
