package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/PEREIRAD01/backend-Pitstoppro/domain"
)

// ErrorHandler is the single translation point from pipeline failures to
// HTTP responses. Anything it does not recognize is logged and answered
// with a generic 500 so internals never leak to clients.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return c.Status(appErr.Status).JSON(domain.ErrorResponse{
			Error:   appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		})
	}

	// Framework-level failures (unknown route, wrong method) get the same
	// PascalCase codes as the pipeline taxonomy.
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code := strings.ReplaceAll(http.StatusText(fiberErr.Code), " ", "")
		if code == "" {
			code = "InternalServerError"
		}
		return c.Status(fiberErr.Code).JSON(domain.ErrorResponse{Error: code})
	}

	log.Printf("Unhandled error: %v", err)
	return c.Status(http.StatusInternalServerError).JSON(domain.ErrorResponse{Error: "InternalServerError"})
}
