package serverutils

import (
	"errors"

	"nota-be/internal/apperror"
	"nota-be/pkg/blocktree"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps domain errors onto HTTP statuses so controllers
// can return service errors unchanged.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := statusForError(err)
		return ctx.Status(status).JSON(ErrorResponse(status, err.Error()))
	}
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, apperror.ErrValidation),
		errors.Is(err, apperror.ErrUnknownBlockType),
		errors.Is(err, blocktree.ErrUnknownType):
		return fiber.StatusBadRequest
	case errors.Is(err, apperror.ErrNotFound),
		errors.Is(err, apperror.ErrDocumentNotFound),
		errors.Is(err, apperror.ErrVersionNotFound):
		return fiber.StatusNotFound
	default:
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return fiberErr.Code
		}
		return fiber.StatusInternalServerError
	}
}
