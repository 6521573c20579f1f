package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"assist-fiber-backend/models"
)

func TestCreateQuietTimeThenListByUser(t *testing.T) {
	app, db := setupApp(t)
	store := seedStore(t, db, "manager.main@walmart.com", "manager123", "Walmart Supercenter - Main St")
	user := seedUser(t, db, "alex.johnson@example.com", "password123", "Alex Johnson")

	status, body := doJSON(t, app, http.MethodPost, "/api/user/quiettime", map[string]interface{}{
		"userId":     user.UserID,
		"storeId":    store.StoreID,
		"date":       "2025-06-20",
		"timeWindow": "10:00 AM - 11:00 AM",
		"reason":     "Sensory sensitivity to loud noises",
	})
	if status != http.StatusCreated {
		t.Fatalf("status = %d (body %v)", status, body)
	}
	insertedID, ok := body["insertedId"].(float64)
	if !ok || insertedID <= 0 {
		t.Fatalf("insertedId = %v", body["insertedId"])
	}

	_, list := doJSONList(t, app, fmt.Sprintf("/api/user/quiettime?userId=%d", user.UserID))
	if len(list) != 1 {
		t.Fatalf("len = %d", len(list))
	}

	row := list[0]
	if row["id"].(float64) != insertedID {
		t.Errorf("id = %v, want %v", row["id"], insertedID)
	}
	if row["storeLocation"] != "Walmart Supercenter - Main St" {
		t.Errorf("storeLocation = %v", row["storeLocation"])
	}
	if row["date"] != "2025-06-20" {
		t.Errorf("date = %v", row["date"])
	}
	if row["timeWindow"] != "10:00 AM - 11:00 AM" {
		t.Errorf("timeWindow = %v", row["timeWindow"])
	}
	if row["status"] != "pending" {
		t.Errorf("status = %v, want pending", row["status"])
	}
}

func TestCreateQuietTimeMissingDate(t *testing.T) {
	app, _ := setupApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/user/quiettime", map[string]interface{}{
		"userId":     1,
		"storeId":    1,
		"timeWindow": "10:00 AM - 11:00 AM",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if body["error"] != "Missing required fields" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestCreateQuietTimeBadDate(t *testing.T) {
	app, _ := setupApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/user/quiettime", map[string]interface{}{
		"userId":     1,
		"storeId":    1,
		"date":       "June 20th",
		"timeWindow": "10:00 AM - 11:00 AM",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if body["error"] != "Invalid date format" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestListUserQuietTimeInvalidUserID(t *testing.T) {
	app, _ := setupApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/api/user/quiettime?userId=abc", nil)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if body["error"] != "userId query param required" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestListManagerQuietTimeByStore(t *testing.T) {
	app, db := setupApp(t)
	store := seedStore(t, db, "manager.main@walmart.com", "manager123", "Walmart Supercenter - Main St")
	otherStore := seedStore(t, db, "manager.oak@walmart.com", "manager123", "Walmart Neighborhood Market - Oak Ave")
	user := seedUser(t, db, "alex.johnson@example.com", "password123", "Alex Johnson")

	seedQuietTime(t, db, user.UserID, store.StoreID, "2025-06-20")
	seedQuietTime(t, db, user.UserID, otherStore.StoreID, "2025-06-25")

	_, list := doJSONList(t, app, fmt.Sprintf("/api/manager/quiettime?storeId=%d", store.StoreID))
	if len(list) != 1 {
		t.Fatalf("len = %d, want 1 (only this store's requests)", len(list))
	}

	row := list[0]
	if row["userName"] != "Alex Johnson" {
		t.Errorf("userName = %v", row["userName"])
	}
	if row["storeLocation"] != "Walmart Supercenter - Main St" {
		t.Errorf("storeLocation = %v", row["storeLocation"])
	}
	if row["date"] != "2025-06-20" {
		t.Errorf("date = %v", row["date"])
	}
	if row["status"] != "pending" {
		t.Errorf("status = %v", row["status"])
	}
}

func TestListManagerQuietTimeMissingStoreID(t *testing.T) {
	app, _ := setupApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/api/manager/quiettime", nil)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if body["error"] != "storeId query param required" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestUpdateQuietTimeStatusApproved(t *testing.T) {
	app, db := setupApp(t)
	store := seedStore(t, db, "manager.main@walmart.com", "manager123", "Walmart Supercenter - Main St")
	user := seedUser(t, db, "alex.johnson@example.com", "password123", "Alex Johnson")
	request := seedQuietTime(t, db, user.UserID, store.StoreID, "2025-06-20")

	status, body := doJSON(t, app, http.MethodPut, "/api/manager/quiettime", map[string]interface{}{
		"id":     request.ID,
		"status": "approved",
	})
	if status != http.StatusOK {
		t.Fatalf("status = %d (body %v)", status, body)
	}
	if body["message"] != "Updated" {
		t.Errorf("message = %v", body["message"])
	}

	var updated models.QuietTime
	if err := db.First(&updated, request.ID).Error; err != nil {
		t.Fatalf("reload request: %v", err)
	}
	if updated.Status != models.QuietTimeApproved {
		t.Errorf("status = %q, want %q", updated.Status, models.QuietTimeApproved)
	}
}

func TestUpdateQuietTimeStatusNotFound(t *testing.T) {
	app, db := setupApp(t)
	store := seedStore(t, db, "manager.main@walmart.com", "manager123", "Walmart Supercenter - Main St")
	user := seedUser(t, db, "alex.johnson@example.com", "password123", "Alex Johnson")
	request := seedQuietTime(t, db, user.UserID, store.StoreID, "2025-06-20")

	status, body := doJSON(t, app, http.MethodPut, "/api/manager/quiettime", map[string]interface{}{
		"id":     999,
		"status": "approved",
	})
	if status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
	if body["error"] != "Not found" {
		t.Errorf("error = %v", body["error"])
	}

	// No row was altered
	var untouched models.QuietTime
	if err := db.First(&untouched, request.ID).Error; err != nil {
		t.Fatalf("reload request: %v", err)
	}
	if untouched.Status != models.QuietTimePending {
		t.Errorf("status = %q, want %q", untouched.Status, models.QuietTimePending)
	}
}

func TestUpdateQuietTimeStatusInvalidValue(t *testing.T) {
	app, db := setupApp(t)
	store := seedStore(t, db, "manager.main@walmart.com", "manager123", "Walmart Supercenter - Main St")
	user := seedUser(t, db, "alex.johnson@example.com", "password123", "Alex Johnson")
	request := seedQuietTime(t, db, user.UserID, store.StoreID, "2025-06-20")

	status, body := doJSON(t, app, http.MethodPut, "/api/manager/quiettime", map[string]interface{}{
		"id":     request.ID,
		"status": "cancelled",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if body["error"] != "id (number) and valid status required" {
		t.Errorf("error = %v", body["error"])
	}

	// Rejected before touching the store
	var untouched models.QuietTime
	if err := db.First(&untouched, request.ID).Error; err != nil {
		t.Fatalf("reload request: %v", err)
	}
	if untouched.Status != models.QuietTimePending {
		t.Errorf("status = %q, want %q", untouched.Status, models.QuietTimePending)
	}
}
