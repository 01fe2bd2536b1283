package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/support-portal/backend/internal/apperr"
	"github.com/support-portal/backend/internal/http/dto"
)

var validate = validator.New()

// respondError maps the service error taxonomy to HTTP. Unclassified errors
// collapse to a generic 500 so storage details never leak.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case apperr.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperr.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperr.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperr.ErrTicketNotFound), errors.Is(err, apperr.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
	case apperr.IsDelivery(err):
		// The transport detail stays in the server log.
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Error: "Failed to send email."})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
}

func parseAndValidate(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		return apperr.NewValidationError("invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return apperr.NewValidationError("invalid field %q", verrs[0].Field())
		}
		return apperr.NewValidationError("invalid request")
	}
	return nil
}
