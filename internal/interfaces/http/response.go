package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
)

// parseBody decodifica el JSON de entrada; un cuerpo ilegible es un error de validación.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return domain.ValidationField("Body", "The request body is not valid JSON.")
	}
	return nil
}

func ok[T any](c *fiber.Ctx, data T, message string) error {
	return c.JSON(dto.Success(data, message))
}

func created[T any](c *fiber.Ctx, data T, message string) error {
	return c.Status(fiber.StatusCreated).JSON(dto.Success(data, message))
}

// list sin elementos responde "No <entities> found." con data = [].
func list[T any](c *fiber.Ctx, items []T, entities string) error {
	if len(items) == 0 {
		return c.JSON(dto.Response[[]T]{Success: true, Message: "No " + entities + " found.", Data: []T{}})
	}
	return c.JSON(dto.Success(items, capitalize(entities)+" retrieved successfully"))
}

func deleted(c *fiber.Ctx, entity string) error {
	return c.JSON(dto.Success(true, entity+" deleted successfully"))
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
