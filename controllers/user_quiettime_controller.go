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

type UserQuietTimeController struct {
	DB *gorm.DB
}

func NewUserQuietTimeController(db *gorm.DB) *UserQuietTimeController {
	return &UserQuietTimeController{DB: db}
}

// Request structs
type CreateQuietTimeRequest struct {
	UserID     *int64  `json:"userId" validate:"required" example:"1"`
	StoreID    *int64  `json:"storeId" validate:"required" example:"1"`
	Date       string  `json:"date" validate:"required" example:"2025-06-20"`
	TimeWindow string  `json:"timeWindow" validate:"required" example:"10:00 AM - 11:00 AM"`
	Reason     *string `json:"reason" example:"Sensory sensitivity to loud noises"`
}

// userQuietTimeRow is the join projection scanned from the store layer
type userQuietTimeRow struct {
	ID            int64
	StoreID       int64
	StoreLocation string
	Date          time.Time
	TimeWindow    string
	Reason        *string
	Status        models.QuietTimeStatus
}

// CreateQuietTime submits a new quiet time request
// @Summary Create quiet time request
// @Description Submit a request for a low-stimulation shopping window at one store
// @Tags QuietTime
// @Accept json
// @Produce json
// @Param request body CreateQuietTimeRequest true "Request details"
// @Success 201 {object} utils.InsertedResponse
// @Failure 400 {object} utils.ErrorResponse "Missing required fields"
// @Failure 500 {object} utils.ErrorResponse "DB error"
// @Router /api/user/quiettime [post]
func (uc *UserQuietTimeController) CreateQuietTime(c fiber.Ctx) error {
	// Binding request body; non-integer userId or storeId also fails here
	var req CreateQuietTimeRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Missing required fields",
		})
	}

	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Missing required fields",
		})
	}

	date, err := time.Parse(models.QuietTimeDateFormat, req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Invalid date format",
		})
	}

	request := models.QuietTime{
		UserID:     *req.UserID,
		StoreID:    *req.StoreID,
		Date:       date,
		TimeWindow: req.TimeWindow,
		Reason:     req.Reason,
		Status:     models.QuietTimePending,
	}

	if err := uc.DB.Create(&request).Error; err != nil {
		log.Println("DB Error (POST user quiettime):", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "DB error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(utils.InsertedResponse{
		InsertedID: request.ID,
	})
}

// GetQuietTimeRequests lists one user's quiet time requests
// @Summary List quiet time requests by user
// @Description Retrieve all quiet time requests submitted by a user, joined with the store location
// @Tags QuietTime
// @Produce json
// @Param userId query int true "User ID"
// @Success 200 {array} models.UserQuietTimeResponse
// @Failure 400 {object} utils.ErrorResponse "userId query param required"
// @Failure 500 {object} utils.ErrorResponse "DB error"
// @Router /api/user/quiettime [get]
func (uc *UserQuietTimeController) GetQuietTimeRequests(c fiber.Ctx) error {
	// Parse userId parameter
	userID, err := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "userId query param required",
		})
	}

	var rows []userQuietTimeRow
	err = uc.DB.Table("quiettime").
		Select(`quiettime.id AS id, quiettime."storeId" AS store_id, store."storeLocation" AS store_location, quiettime.date AS date, quiettime.timewindow AS time_window, quiettime.reason AS reason, quiettime.status AS status`).
		Joins(`JOIN store ON store."storeId" = quiettime."storeId"`).
		Where(`quiettime."userId" = ?`, userID).
		Order("quiettime.id ASC").
		Scan(&rows).Error
	if err != nil {
		log.Println("DB Error (GET user quiettime):", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "DB error",
		})
	}

	// Format response
	requests := make([]models.UserQuietTimeResponse, len(rows))
	for i, row := range rows {
		requests[i] = models.UserQuietTimeResponse{
			ID:            row.ID,
			StoreID:       row.StoreID,
			StoreLocation: row.StoreLocation,
			Date:          row.Date.Format(models.QuietTimeDateFormat),
			TimeWindow:    row.TimeWindow,
			Reason:        row.Reason,
			Status:        row.Status,
		}
	}

	return c.Status(fiber.StatusOK).JSON(requests)
}
