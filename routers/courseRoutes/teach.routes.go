package courseRoutes

import (
	controllers "elearn/controllers/course"
	"elearn/middleware"
	validators "elearn/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupTeachRoutes sets up all instructor course management routes
func SetupTeachRoutes(app *fiber.App) {
	teachGroup := app.Group("/teach/course", middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR"))

	// Course CRUD
	teachGroup.Post("/create", validators.CreateCourse(), controllers.CreateCourse)
	teachGroup.Put("/:id", validators.UpdateCourse(), controllers.UpdateCourse)
	teachGroup.Delete("/:id", validators.CourseID(), controllers.DeleteCourse)
	teachGroup.Get("/list", controllers.ListOwnCourses)
	teachGroup.Get("/:id", validators.CourseID(), controllers.GetOwnCourse)
	teachGroup.Post("/:id/publish", validators.PublishCourse(), controllers.PublishCourse)

	// Module Management
	teachGroup.Post("/:id/module", validators.CreateModule(), controllers.CreateModule)
	teachGroup.Put("/:course_id/module/:module_id", validators.UpdateModule(), controllers.UpdateModule)
	teachGroup.Delete("/:course_id/module/:module_id", validators.ModuleID(), controllers.DeleteModule)
	teachGroup.Get("/:id/modules", validators.CourseID(), controllers.ListModules)

	// Content Management
	teachGroup.Post("/:course_id/module/:module_id/content", validators.CreateContent(), controllers.CreateContent)
	teachGroup.Get("/:course_id/module/:module_id/content", validators.ModuleID(), controllers.ListContents)

	contentGroup := app.Group("/teach/content", middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR"))
	contentGroup.Put("/:content_id", validators.UpdateContent(), controllers.UpdateContent)
	contentGroup.Delete("/:content_id", validators.ContentID(), controllers.DeleteContent)

	// Catalog subjects
	app.Post("/teach/subject", middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR"), validators.CreateSubject(), controllers.CreateSubject)

	// Bulk reorder endpoints (drag-and-drop persistence)
	app.Post("/teach/module/order", middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR"), validators.OrderPayload(), controllers.ModuleOrder)
	app.Post("/teach/content/order", middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR"), validators.OrderPayload(), controllers.ContentOrder)
}
