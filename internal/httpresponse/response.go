// Package httpresponse shapes every JSON answer of the dashboard server.
package httpresponse

import (
	"errors"

	"github.com/KaramelBytes/gdpcov-cli/internal/statistic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	NoData  bool   `json:"noData,omitempty"`
}

func ApplySuccessToResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(Response{Success: true, Data: data})
}

// ApplyErrorToResponse answers 500 and logs the cause; the cause is not
// exposed to the client.
func ApplyErrorToResponse(c *fiber.Ctx, message string, err error) error {
	if err != nil {
		log.Errorf("%s %s: %s: %v", requestID(c), c.Path(), message, err)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(Response{Error: message})
}

// ApplyNoDataToResponse answers 422 for selections that match nothing the
// dataset knows about.
func ApplyNoDataToResponse(c *fiber.Ctx, err error) error {
	log.Warnf("%s %s: %v", requestID(c), c.Path(), err)
	return c.Status(fiber.StatusUnprocessableEntity).JSON(Response{Error: err.Error(), NoData: true})
}

// ApplyResultToResponse routes a view result to the matching helper.
func ApplyResultToResponse(c *fiber.Ctx, data any, err error) error {
	switch {
	case err == nil:
		return ApplySuccessToResponse(c, data)
	case errors.Is(err, statistic.ErrInvalidSelection):
		return ApplyNoDataToResponse(c, err)
	default:
		return ApplyErrorToResponse(c, "Unexpected error", err)
	}
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return "-"
}
