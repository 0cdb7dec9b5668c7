package controllers

import (
	"elearn/database"
	"elearn/middleware"
	courseModels "elearn/models/course"
	"elearn/ordering"

	"github.com/gofiber/fiber/v2"
)

// ownedModule fetches a module only when its course belongs to the actor
func ownedModule(moduleID int, userID uint) (*courseModels.Module, error) {
	ownedCourses := database.Database.Db.Model(&courseModels.Course{}).
		Select("id").
		Where("owner_id = ? AND is_deleted = ?", userID, false)

	var module courseModels.Module
	err := database.Database.Db.
		Where("id = ? AND course_id IN (?) AND is_deleted = ?", moduleID, ownedCourses, false).
		First(&module).Error
	if err != nil {
		return nil, err
	}
	return &module, nil
}

// CreateContent creates a new content item in a module
func CreateContent(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	moduleID := c.Locals("moduleID").(int)

	module, err := ownedModule(moduleID, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	reqData, ok := c.Locals("validatedContent").(*struct {
		Title       string `json:"title"`
		ContentType string `json:"content_type"`
		TextBody    string `json:"text_body"`
		FileURL     string `json:"file_url"`
		ImageURL    string `json:"image_url"`
		VideoURL    string `json:"video_url"`
		OrderIndex  *int   `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	content := courseModels.Content{
		ModuleID:    module.ID,
		Title:       reqData.Title,
		ContentType: reqData.ContentType,
		TextBody:    reqData.TextBody,
		FileURL:     reqData.FileURL,
		ImageURL:    reqData.ImageURL,
		VideoURL:    reqData.VideoURL,
		OrderIndex:  reqData.OrderIndex,
	}

	// An explicit order index wins; otherwise take the next free position
	// among the module's contents
	if _, err := ordering.Assign(database.Database.Db, &content); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assign content order!", nil)
	}

	if err := database.Database.Db.Create(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Content created successfully!", content)
}

// UpdateContent updates an existing content item
func UpdateContent(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	contentID := c.Locals("contentID").(int)

	content, err := ownedContent(contentID, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	reqData, ok := c.Locals("validatedContentUpdate").(*struct {
		Title       string `json:"title"`
		ContentType string `json:"content_type"`
		TextBody    string `json:"text_body"`
		FileURL     string `json:"file_url"`
		ImageURL    string `json:"image_url"`
		VideoURL    string `json:"video_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		content.Title = reqData.Title
	}
	if reqData.ContentType != "" {
		content.ContentType = reqData.ContentType
	}
	if reqData.TextBody != "" {
		content.TextBody = reqData.TextBody
	}
	if reqData.FileURL != "" {
		content.FileURL = reqData.FileURL
	}
	if reqData.ImageURL != "" {
		content.ImageURL = reqData.ImageURL
	}
	if reqData.VideoURL != "" {
		content.VideoURL = reqData.VideoURL
	}

	if err := database.Database.Db.Save(content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content updated successfully!", content)
}

// ownedContent fetches a content item only when its module's course belongs
// to the actor
func ownedContent(contentID int, userID uint) (*courseModels.Content, error) {
	ownedCourses := database.Database.Db.Model(&courseModels.Course{}).
		Select("id").
		Where("owner_id = ? AND is_deleted = ?", userID, false)
	ownedModules := database.Database.Db.Model(&courseModels.Module{}).
		Select("id").
		Where("course_id IN (?) AND is_deleted = ?", ownedCourses, false)

	var content courseModels.Content
	err := database.Database.Db.
		Where("id = ? AND module_id IN (?) AND is_deleted = ?", contentID, ownedModules, false).
		First(&content).Error
	if err != nil {
		return nil, err
	}
	return &content, nil
}

// DeleteContent soft deletes a content item. Sibling order indexes are left
// untouched, the gap is expected.
func DeleteContent(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	contentID := c.Locals("contentID").(int)

	content, err := ownedContent(contentID, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	content.IsDeleted = true
	if err := database.Database.Db.Save(content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content deleted successfully!", nil)
}

// ListContents lists a module's contents sorted by their order index
func ListContents(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	moduleID := c.Locals("moduleID").(int)

	module, err := ownedModule(moduleID, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var contents []courseModels.Content
	if err := database.Database.Db.Where("module_id = ? AND is_deleted = ?", module.ID, false).Order("order_index asc").Find(&contents).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch contents!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contents fetched successfully!", contents)
}
