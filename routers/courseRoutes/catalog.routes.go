package courseRoutes

import (
	controllers "elearn/controllers/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCatalogRoutes sets up the student-facing catalog routes
func SetupCatalogRoutes(app *fiber.App) {
	catalogGroup := app.Group("/catalog")

	catalogGroup.Get("/subjects", controllers.ListSubjects)
	catalogGroup.Get("/courses", controllers.ListCourses)
	catalogGroup.Get("/course/:slug", controllers.GetCourseBySlug)
}
