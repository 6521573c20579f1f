package controllers

import (
	"log"

	"assist-fiber-backend/models"
	"assist-fiber-backend/utils"

	"github.com/gofiber/fiber/v3"
	"gorm.io/gorm"
)

type AnnouncementController struct {
	DB *gorm.DB
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db}
}

// Request structs
type CreateAnnouncementRequest struct {
	Title   string  `json:"title" validate:"required" example:"Quiet hours this Friday"`
	Descrip *string `json:"descrip" example:"Lights dimmed and music off from 9 to 11 AM"`
	StoreID *int64  `json:"storeId" validate:"required" example:"1"`
}

// AnnouncementListResponse wraps the announcement listing
type AnnouncementListResponse struct {
	Announcements []models.AnnouncementResponse `json:"announcements"`
}

// CreateAnnouncement creates a new store announcement
// @Summary Create Announcement
// @Description Post a manager announcement for one store
// @Tags Announcements
// @Accept json
// @Produce json
// @Param request body CreateAnnouncementRequest true "Announcement details"
// @Success 201 {object} utils.CreatedResponse
// @Failure 400 {object} utils.ErrorResponse "Missing required fields"
// @Failure 500 {object} utils.ErrorResponse "Database error"
// @Router /api/manager/announcement [post]
func (ac *AnnouncementController) CreateAnnouncement(c fiber.Ctx) error {
	// Binding request body; a non-integer storeId also fails here
	var req CreateAnnouncementRequest
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

	announcement := models.Announcement{
		Title:   req.Title,
		Descrip: req.Descrip,
		StoreID: *req.StoreID,
	}

	if err := ac.DB.Create(&announcement).Error; err != nil {
		log.Println("DB Error (POST announcement):", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Database error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(utils.CreatedResponse{
		Message:    "Announcement added successfully",
		InsertedID: announcement.ID,
	})
}

// GetAnnouncements lists all announcements, newest first
// @Summary List Announcements
// @Description Retrieve all announcements ordered newest-first
// @Tags Announcements
// @Produce json
// @Success 200 {object} AnnouncementListResponse
// @Failure 500 {object} utils.ErrorResponse "Database error"
// @Router /api/manager/announcement [get]
func (ac *AnnouncementController) GetAnnouncements(c fiber.Ctx) error {
	var announcements []models.Announcement

	// id breaks ties between same-second inserts so repeated listings agree
	if err := ac.DB.Order("created_at DESC, id DESC").Find(&announcements).Error; err != nil {
		log.Println("DB Error (GET announcement):", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Database error",
		})
	}

	// Format response
	announcementList := make([]models.AnnouncementResponse, len(announcements))
	for i, announcement := range announcements {
		announcementList[i] = *announcement.ToResponse()
	}

	return c.Status(fiber.StatusOK).JSON(AnnouncementListResponse{
		Announcements: announcementList,
	})
}
