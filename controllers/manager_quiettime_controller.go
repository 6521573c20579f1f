package controllers

import (
	"log"
	"strconv"
	"time"

	"assist-fiber-backend/models"
	"assist-fiber-backend/utils"

	"github.com/gofiber/fiber/v3"
	"gorm.io/gorm"
)

type ManagerQuietTimeController struct {
	DB *gorm.DB
}

func NewManagerQuietTimeController(db *gorm.DB) *ManagerQuietTimeController {
	return &ManagerQuietTimeController{DB: db}
}

// Request structs
type UpdateQuietTimeStatusRequest struct {
	ID     *int64 `json:"id" validate:"required" example:"1"`
	Status string `json:"status" validate:"required,oneof=approved rejected" example:"approved"`
}

// managerQuietTimeRow is the join projection scanned from the store layer
type managerQuietTimeRow struct {
	ID            int64
	UserID        int64
	UserName      string
	StoreLocation string
	Date          time.Time
	TimeWindow    string
	Reason        *string
	Status        models.QuietTimeStatus
}

// GetQuietTimeRequests lists quiet time requests for one store
// @Summary List quiet time requests by store
// @Description Retrieve all quiet time requests for a store, joined with requester name and store location
// @Tags QuietTime
// @Produce json
// @Param storeId query int true "Store ID"
// @Success 200 {array} models.ManagerQuietTimeResponse
// @Failure 400 {object} utils.ErrorResponse "storeId query param required"
// @Failure 500 {object} utils.ErrorResponse "DB error"
// @Router /api/manager/quiettime [get]
func (mc *ManagerQuietTimeController) GetQuietTimeRequests(c fiber.Ctx) error {
	// Parse storeId parameter
	storeID, err := strconv.ParseInt(c.Query("storeId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "storeId query param required",
		})
	}

	var rows []managerQuietTimeRow
	err = mc.DB.Table("quiettime").
		Select(`quiettime.id AS id, quiettime."userId" AS user_id, user_table.name AS user_name, store."storeLocation" AS store_location, quiettime.date AS date, quiettime.timewindow AS time_window, quiettime.reason AS reason, quiettime.status AS status`).
		Joins(`JOIN user_table ON user_table."userId" = quiettime."userId"`).
		Joins(`JOIN store ON store."storeId" = quiettime."storeId"`).
		Where(`quiettime."storeId" = ?`, storeID).
		Order("quiettime.id ASC").
		Scan(&rows).Error
	if err != nil {
		log.Println("DB Error (GET manager quiettime):", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "DB error",
		})
	}

	// Format response
	requests := make([]models.ManagerQuietTimeResponse, len(rows))
	for i, row := range rows {
		requests[i] = models.ManagerQuietTimeResponse{
			ID:            row.ID,
			UserID:        row.UserID,
			UserName:      row.UserName,
			StoreLocation: row.StoreLocation,
			Date:          row.Date.Format(models.QuietTimeDateFormat),
			TimeWindow:    row.TimeWindow,
			Reason:        row.Reason,
			Status:        row.Status,
		}
	}

	return c.Status(fiber.StatusOK).JSON(requests)
}

// UpdateQuietTimeStatus approves or rejects one quiet time request
// @Summary Update quiet time status
// @Description Transition a quiet time request to approved or rejected
// @Tags QuietTime
// @Accept json
// @Produce json
// @Param request body UpdateQuietTimeStatusRequest true "Target id and new status"
// @Success 200 {object} utils.MessageResponse
// @Failure 400 {object} utils.ErrorResponse "id (number) and valid status required"
// @Failure 404 {object} utils.ErrorResponse "Not found"
// @Failure 500 {object} utils.ErrorResponse "DB error"
// @Router /api/manager/quiettime [put]
func (mc *ManagerQuietTimeController) UpdateQuietTimeStatus(c fiber.Ctx) error {
	var req UpdateQuietTimeStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "id (number) and valid status required",
		})
	}

	// Rejects any status outside {approved, rejected} before touching the store
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "id (number) and valid status required",
		})
	}

	result := mc.DB.Model(&models.QuietTime{}).Where("id = ?", *req.ID).Update("status", req.Status)
	if result.Error != nil {
		log.Println("DB Error (PUT manager quiettime):", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "DB error",
		})
	}

	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Error: "Not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(utils.MessageResponse{
		Message: "Updated",
	})
}
