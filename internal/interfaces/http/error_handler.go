package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/pkg/logger"
)

// ErrorHandler único punto donde un error se convierte en respuesta HTTP.
// 4xx se registran en warn y 5xx en error; el detalle interno nunca sale al cliente.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := errorResponse(err)

		ev := log.Warn()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Err(err).
			Int("status", status).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("request_id", requestID(c)).
			Msg("petición con error")

		return c.Status(status).JSON(body)
	}
}

func errorResponse(err error) (int, any) {
	var de *domain.Error
	if errors.As(err, &de) {
		switch de.Kind {
		case domain.KindValidation:
			return fiber.StatusBadRequest, dto.Response[map[string][]string]{
				Success: false,
				Message: domain.MsgValidation,
				Data:    de.Fields,
			}
		case domain.KindNotFound:
			return fiber.StatusNotFound, dto.Error(de.Message)
		case domain.KindUnauthorized:
			return fiber.StatusUnauthorized, dto.Error(domain.MsgUnauthorized)
		case domain.KindForbidden:
			return fiber.StatusForbidden, dto.Error(de.Message)
		case domain.KindConflict:
			return fiber.StatusConflict, dto.Error(de.Message)
		}
		return fiber.StatusInternalServerError, dto.Error(domain.MsgInternal)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		if fe.Code >= fiber.StatusInternalServerError {
			return fe.Code, dto.Error(domain.MsgInternal)
		}
		return fe.Code, dto.Error(fe.Message)
	}
	return fiber.StatusInternalServerError, dto.Error(domain.MsgInternal)
}
