package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"assist-fiber-backend/config"
	"assist-fiber-backend/database"
	"assist-fiber-backend/models"
	"assist-fiber-backend/routes"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupApp builds the full route table against a fresh in-memory database.
func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	app := fiber.New()
	routes.SetupRoutes(app, config.LoadConfig(), db)
	return app, db
}

func seedStore(t *testing.T, db *gorm.DB, email, password, location string) models.Store {
	t.Helper()
	store := models.Store{ManagerEmail: email, ManagerPassword: password, StoreLocation: location}
	if err := db.Create(&store).Error; err != nil {
		t.Fatalf("seed store: %v", err)
	}
	return store
}

func seedUser(t *testing.T, db *gorm.DB, email, password, name string) models.User {
	t.Helper()
	user := models.User{UserEmail: email, Password: password, Name: name}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedQuietTime(t *testing.T, db *gorm.DB, userID, storeID int64, date string) models.QuietTime {
	t.Helper()
	day, err := time.Parse(models.QuietTimeDateFormat, date)
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	request := models.QuietTime{
		UserID:     userID,
		StoreID:    storeID,
		Date:       day,
		TimeWindow: "10:00 AM - 11:00 AM",
		Status:     models.QuietTimePending,
	}
	if err := db.Create(&request).Error; err != nil {
		t.Fatalf("seed quiettime: %v", err)
	}
	return request
}

// doJSON performs a request with a JSON body and decodes the JSON response.
func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	defer resp.Body.Close()

	var decoded map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, decoded
}

// doJSONList is doJSON for endpoints answering with a top-level array.
func doJSONList(t *testing.T, app *fiber.App, target string) (int, []map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("GET %s: %v", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var decoded map[string]interface{}
		_ = json.NewDecoder(resp.Body).Decode(&decoded)
		t.Fatalf("GET %s: status %d, body %v", target, resp.StatusCode, decoded)
	}

	var list []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	return resp.StatusCode, list
}
