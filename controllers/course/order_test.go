package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"elearn/database"
	"elearn/models"
	courseModels "elearn/models/course"
	courseValidators "elearn/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const actorID uint = 1

// setupTestApp wires the course handlers behind a stub auth middleware acting
// as user 1, backed by an in-memory database.
func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A fresh in-memory database lives per connection; pin the pool to one
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&courseModels.Subject{},
		&courseModels.Course{},
		&courseModels.Module{},
		&courseModels.Content{},
	))
	database.Database = database.DbInstance{Db: db}

	asActor := func(c *fiber.Ctx) error {
		c.Locals("userId", actorID)
		return c.Next()
	}

	app := fiber.New()
	app.Post("/teach/module/order", asActor, courseValidators.OrderPayload(), ModuleOrder)
	app.Post("/teach/content/order", asActor, courseValidators.OrderPayload(), ContentOrder)
	app.Post("/teach/course/:id/module", asActor, courseValidators.CreateModule(), CreateModule)
	app.Post("/teach/course/:course_id/module/:module_id/content", asActor, courseValidators.CreateContent(), CreateContent)

	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, string) {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func seedCourse(t *testing.T, db *gorm.DB, ownerID uint, slug string) *courseModels.Course {
	t.Helper()

	course := &courseModels.Course{OwnerID: ownerID, Title: "Course " + slug, Slug: slug}
	require.NoError(t, db.Create(course).Error)
	return course
}

func seedModule(t *testing.T, db *gorm.DB, courseID uint, orderIndex int) *courseModels.Module {
	t.Helper()

	module := &courseModels.Module{CourseID: courseID, Title: "Seeded module"}
	module.SetOrderIndex(orderIndex)
	require.NoError(t, db.Create(module).Error)
	return module
}

func seedContent(t *testing.T, db *gorm.DB, moduleID uint, orderIndex int) *courseModels.Content {
	t.Helper()

	content := &courseModels.Content{ModuleID: moduleID, Title: "Seeded content", ContentType: "TEXT", TextBody: "body"}
	content.SetOrderIndex(orderIndex)
	require.NoError(t, db.Create(content).Error)
	return content
}

func TestModuleOrderUpdatesOwnedAndSkipsForeign(t *testing.T) {
	app, db := setupTestApp(t)

	owned := seedModule(t, db, seedCourse(t, db, actorID, "own").ID, 0)
	foreign := seedModule(t, db, seedCourse(t, db, 2, "foreign").ID, 0)

	body := fmt.Sprintf(`{"%d": 2, "%d": 5}`, owned.ID, foreign.ID)
	status, respBody := postJSON(t, app, "/teach/module/order", body)

	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"saved":"OK"}`, respBody)

	var got courseModels.Module
	require.NoError(t, db.First(&got, owned.ID).Error)
	assert.Equal(t, 2, *got.OrderIndex)

	// The module owned by someone else is silently left alone
	var gotForeign courseModels.Module
	require.NoError(t, db.First(&gotForeign, foreign.ID).Error)
	assert.Equal(t, 0, *gotForeign.OrderIndex)
}

func TestModuleOrderNonIntegerValueRejectedBeforeWrites(t *testing.T) {
	app, db := setupTestApp(t)

	module := seedModule(t, db, seedCourse(t, db, actorID, "own").ID, 0)

	body := fmt.Sprintf(`{"%d": "two"}`, module.ID)
	status, _ := postJSON(t, app, "/teach/module/order", body)
	assert.Equal(t, fiber.StatusBadRequest, status)

	var got courseModels.Module
	require.NoError(t, db.First(&got, module.ID).Error)
	assert.Equal(t, 0, *got.OrderIndex)
}

func TestModuleOrderNegativeValueRejected(t *testing.T) {
	app, db := setupTestApp(t)

	module := seedModule(t, db, seedCourse(t, db, actorID, "own").ID, 1)

	body := fmt.Sprintf(`{"%d": -1}`, module.ID)
	status, _ := postJSON(t, app, "/teach/module/order", body)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	var got courseModels.Module
	require.NoError(t, db.First(&got, module.ID).Error)
	assert.Equal(t, 1, *got.OrderIndex)
}

func TestModuleOrderMalformedIDRejectsWholeBatch(t *testing.T) {
	app, db := setupTestApp(t)

	module := seedModule(t, db, seedCourse(t, db, actorID, "own").ID, 0)

	// One bad key rejects the batch before any write happens
	body := fmt.Sprintf(`{"%d": 4, "abc": 1}`, module.ID)
	status, _ := postJSON(t, app, "/teach/module/order", body)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	var got courseModels.Module
	require.NoError(t, db.First(&got, module.ID).Error)
	assert.Equal(t, 0, *got.OrderIndex)
}

func TestContentOrderUpdatesOwnedAndSkipsForeign(t *testing.T) {
	app, db := setupTestApp(t)

	ownedModule := seedModule(t, db, seedCourse(t, db, actorID, "own").ID, 0)
	foreignModule := seedModule(t, db, seedCourse(t, db, 2, "foreign").ID, 0)

	owned := seedContent(t, db, ownedModule.ID, 0)
	foreign := seedContent(t, db, foreignModule.ID, 0)

	body := fmt.Sprintf(`{"%d": 3, "%d": 7}`, owned.ID, foreign.ID)
	status, respBody := postJSON(t, app, "/teach/content/order", body)

	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"saved":"OK"}`, respBody)

	var got courseModels.Content
	require.NoError(t, db.First(&got, owned.ID).Error)
	assert.Equal(t, 3, *got.OrderIndex)

	var gotForeign courseModels.Content
	require.NoError(t, db.First(&gotForeign, foreign.ID).Error)
	assert.Equal(t, 0, *gotForeign.OrderIndex)
}

func TestOrderEndpointAcknowledgesEvenWhenNothingMatches(t *testing.T) {
	app, _ := setupTestApp(t)

	status, respBody := postJSON(t, app, "/teach/module/order", `{"9999": 0}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"saved":"OK"}`, respBody)
}

type moduleResponse struct {
	Data courseModels.Module `json:"data"`
}

func TestCreateModuleAssignsNextOrderIndex(t *testing.T) {
	app, db := setupTestApp(t)

	course := seedCourse(t, db, actorID, "own")
	path := fmt.Sprintf("/teach/course/%d/module", course.ID)

	for want := 0; want < 3; want++ {
		status, respBody := postJSON(t, app, path, `{"title": "New module"}`)
		require.Equal(t, fiber.StatusCreated, status)

		var parsed moduleResponse
		require.NoError(t, json.Unmarshal([]byte(respBody), &parsed))
		require.NotNil(t, parsed.Data.OrderIndex)
		assert.Equal(t, want, *parsed.Data.OrderIndex)
	}
}

func TestCreateModuleExplicitOrderIndexKept(t *testing.T) {
	app, db := setupTestApp(t)

	course := seedCourse(t, db, actorID, "own")
	seedModule(t, db, course.ID, 0)

	path := fmt.Sprintf("/teach/course/%d/module", course.ID)
	status, respBody := postJSON(t, app, path, `{"title": "Pinned module", "order_index": 9}`)
	require.Equal(t, fiber.StatusCreated, status)

	var parsed moduleResponse
	require.NoError(t, json.Unmarshal([]byte(respBody), &parsed))
	require.NotNil(t, parsed.Data.OrderIndex)
	assert.Equal(t, 9, *parsed.Data.OrderIndex)
}

func TestCreateContentAssignsNextOrderIndexPerModule(t *testing.T) {
	app, db := setupTestApp(t)

	course := seedCourse(t, db, actorID, "own")
	first := seedModule(t, db, course.ID, 0)
	second := seedModule(t, db, course.ID, 1)

	makePath := func(moduleID uint) string {
		return fmt.Sprintf("/teach/course/%d/module/%d/content", course.ID, moduleID)
	}
	body := `{"title": "Lesson text", "content_type": "TEXT", "text_body": "hello"}`

	type contentResponse struct {
		Data courseModels.Content `json:"data"`
	}

	status, respBody := postJSON(t, app, makePath(first.ID), body)
	require.Equal(t, fiber.StatusCreated, status)
	var parsed contentResponse
	require.NoError(t, json.Unmarshal([]byte(respBody), &parsed))
	assert.Equal(t, 0, *parsed.Data.OrderIndex)

	status, respBody = postJSON(t, app, makePath(first.ID), body)
	require.Equal(t, fiber.StatusCreated, status)
	require.NoError(t, json.Unmarshal([]byte(respBody), &parsed))
	assert.Equal(t, 1, *parsed.Data.OrderIndex)

	// A different module is a different scope and starts over at zero
	status, respBody = postJSON(t, app, makePath(second.ID), body)
	require.Equal(t, fiber.StatusCreated, status)
	require.NoError(t, json.Unmarshal([]byte(respBody), &parsed))
	assert.Equal(t, 0, *parsed.Data.OrderIndex)
}
