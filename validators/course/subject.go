package courseValidator

import (
	"elearn/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateSubject validates subject creation request
func CreateSubject() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title string `json:"title"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)

		if reqData.Title == "" {
			errors["title"] = "Subject title is required!"
		} else if len(reqData.Title) < 2 {
			errors["title"] = "Subject title must be at least 2 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubject", reqData)
		return c.Next()
	}
}
