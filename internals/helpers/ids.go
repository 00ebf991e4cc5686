package helper

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Los IDs son bigint en la DB. JSON no representa enteros de 64 bits sin
// pérdida, así que todo ID que sale por el wire viaja como string.

func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func FormatIDPtr(id *int64) *string {
	if id == nil {
		return nil
	}
	s := strconv.FormatInt(*id, 10)
	return &s
}

func ParseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// ParseIDParam lee un path param como ID; devuelve 400 listo para retornar.
func ParseIDParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Formato de ID inválido")
	}
	return id, nil
}
