package controllers

import (
	"elearn/database"
	"elearn/middleware"
	courseModels "elearn/models/course"
	"elearn/ordering"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ModuleOrder persists a client-supplied ordering of modules after a
// drag-and-drop. Each entry updates one module's order index, restricted to
// modules whose course is owned by the actor; ids outside that scope update
// zero rows and are skipped without an error. The acknowledgement is the
// same whether zero or all rows changed.
func ModuleOrder(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	updates := c.Locals("orderUpdates").(map[uint]int)

	db := database.Database.Db
	err := ordering.BulkUpdate(db, &courseModels.Module{}, updates, func(q *gorm.DB) *gorm.DB {
		ownedCourses := db.Model(&courseModels.Course{}).
			Select("id").
			Where("owner_id = ? AND is_deleted = ?", userID, false)
		return q.Where("course_id IN (?)", ownedCourses)
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save module order!", nil)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"saved": "OK"})
}

// ContentOrder persists a client-supplied ordering of content items,
// restricted to contents whose module's course is owned by the actor. Same
// skip-silently semantics as ModuleOrder.
func ContentOrder(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	updates := c.Locals("orderUpdates").(map[uint]int)

	db := database.Database.Db
	err := ordering.BulkUpdate(db, &courseModels.Content{}, updates, func(q *gorm.DB) *gorm.DB {
		ownedCourses := db.Model(&courseModels.Course{}).
			Select("id").
			Where("owner_id = ? AND is_deleted = ?", userID, false)
		ownedModules := db.Model(&courseModels.Module{}).
			Select("id").
			Where("course_id IN (?) AND is_deleted = ?", ownedCourses, false)
		return q.Where("module_id IN (?)", ownedModules)
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save content order!", nil)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"saved": "OK"})
}
