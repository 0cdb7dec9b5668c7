package controllers

import (
	"elearn/database"
	"elearn/middleware"
	courseModels "elearn/models/course"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ListSubjects lists all catalog subjects
func ListSubjects(c *fiber.Ctx) error {
	var subjects []courseModels.Subject
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("title asc").Find(&subjects).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch subjects!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subjects fetched successfully!", subjects)
}

// ListCourses lists published courses, optionally filtered by subject slug
func ListCourses(c *fiber.Ctx) error {
	db := database.Database.Db.Where("is_published = ? AND is_deleted = ?", true, false)

	subjectSlug := strings.TrimSpace(c.Query("subject"))
	if subjectSlug != "" {
		var subject courseModels.Subject
		if err := database.Database.Db.Where("slug = ? AND is_deleted = ?", subjectSlug, false).First(&subject).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
		}
		db = db.Where("subject_id = ?", subject.ID)
	}

	var courses []courseModels.Course
	if err := db.Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetCourseBySlug returns a published course with its modules and contents in
// display order
func GetCourseBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course slug is required!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("slug = ? AND is_published = ? AND is_deleted = ?", slug, true, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var modules []courseModels.Module
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", course.ID, false).Order("order_index asc").Find(&modules)

	type moduleWithContents struct {
		courseModels.Module
		Contents []courseModels.Content `json:"contents"`
	}

	result := make([]moduleWithContents, len(modules))
	for i, module := range modules {
		result[i] = moduleWithContents{Module: module}
		database.Database.Db.Where("module_id = ? AND is_deleted = ?", module.ID, false).Order("order_index asc").Find(&result[i].Contents)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":  course,
		"modules": result,
	})
}
