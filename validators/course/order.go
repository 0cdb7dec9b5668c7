package courseValidator

import (
	"elearn/middleware"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// OrderPayload validates a bulk reorder body: a JSON object mapping entity id
// to the desired order index. The whole batch is rejected before any write
// when an id is malformed or an order value is not a non-negative integer.
func OrderPayload() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := make(map[string]int)
		if err := c.BodyParser(&raw); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		updates := make(map[uint]int, len(raw))

		for key, index := range raw {
			id, err := strconv.Atoi(key)
			if err != nil || id <= 0 {
				errors[key] = "Invalid ID!"
				continue
			}
			if index < 0 {
				errors[key] = "Order index must not be negative!"
				continue
			}
			updates[uint(id)] = index
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("orderUpdates", updates)
		return c.Next()
	}
}
