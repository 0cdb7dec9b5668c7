package controllers

import (
	"elearn/database"
	"elearn/middleware"
	courseModels "elearn/models/course"
	"elearn/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateSubject creates a new catalog subject
func CreateSubject(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSubject").(*struct {
		Title string `json:"title"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	slug := utils.Slugify(reqData.Title)
	if err := db.Where("slug = ?", slug).First(&courseModels.Subject{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Subject already exists!", nil)
	}

	subject := courseModels.Subject{
		Title: reqData.Title,
		Slug:  slug,
	}

	if err := db.Create(&subject).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create subject!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Subject created successfully!", subject)
}
