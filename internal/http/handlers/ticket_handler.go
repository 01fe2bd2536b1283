package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/support-portal/backend/internal/http/dto"
	"github.com/support-portal/backend/internal/middleware"
	"github.com/support-portal/backend/internal/services"
)

type TicketHandler struct {
	ticketService *services.TicketService
	log           *zap.Logger
}

func NewTicketHandler(ticketService *services.TicketService, log *zap.Logger) *TicketHandler {
	return &TicketHandler{ticketService: ticketService, log: log}
}

// CreateTicket is the public submission form.
func (h *TicketHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := parseAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	res, err := h.ticketService.CreateTicket(c.Context(), services.CreateTicketInput{
		CustomerName:  req.CustomerName,
		Email:         req.Email,
		Description:   req.Description,
		AttachmentURL: req.AttachmentURL,
		Category:      req.Category,
		Priority:      req.Priority,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.TicketWriteResponse{
		OK:        true,
		Data:      res.Ticket,
		EmailSent: res.EmailSent,
	})
}

func (h *TicketHandler) GetTicket(c *fiber.Ctx) error {
	ticket, err := h.ticketService.GetTicket(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: ticket})
}

func (h *TicketHandler) GetActivity(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	entries, err := h.ticketService.Activity(c.Context(), c.Params("id"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: entries})
}

// EditTicket applies a staff edit through the lifecycle controller.
func (h *TicketHandler) EditTicket(c *fiber.Ctx) error {
	var req dto.EditTicketRequest
	if err := parseAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	actor := middleware.GetIdentity(c)
	res, err := h.ticketService.ProposeEdit(c.Context(), actor, c.Params("id"), services.EditRequest{
		Status:            req.Status,
		Priority:          req.Priority,
		Assignee:          req.Assignee,
		Note:              req.Note,
		ResolutionSummary: req.ResolutionSummary,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.TicketWriteResponse{
		OK:        true,
		Data:      res.Ticket,
		Changes:   res.Changes,
		EmailSent: res.EmailSent,
	})
}

func (h *TicketHandler) Reply(c *fiber.Ctx) error {
	var req dto.ReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	actor := middleware.GetIdentity(c)
	if err := h.ticketService.SendReply(c.Context(), actor, c.Params("id"), req.Body); err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *TicketHandler) AssigneeOptions(c *fiber.Ctx) error {
	actor := middleware.GetIdentity(c)
	options, err := h.ticketService.AssigneeOptions(c.Context(), actor)
	if err != nil {
		h.log.Error("assignee options failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: options})
}
