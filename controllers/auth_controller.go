package controllers

import (
	"log"

	"assist-fiber-backend/models"
	"assist-fiber-backend/utils"

	"github.com/gofiber/fiber/v3"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// Request structs
type ManagerLoginRequest struct {
	ManagerEmail    string `json:"managerEmail" validate:"required" example:"manager.main@walmart.com"`
	ManagerPassword string `json:"managerPassword" validate:"required" example:"manager123"`
}

type UserLoginRequest struct {
	UserEmail string `json:"userEmail" validate:"required" example:"alex.johnson@example.com"`
	Password  string `json:"password" validate:"required" example:"password123"`
}

// ManagerLogin authenticates a store manager
// @Summary Manager login
// @Description Match manager credentials against the store table and return the store record. No session token is issued; the caller persists the record client-side.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body ManagerLoginRequest true "Manager credentials"
// @Success 200 {object} models.StoreResponse
// @Failure 400 {object} utils.ErrorResponse "Email and password required"
// @Failure 401 {object} utils.ErrorResponse "Invalid credentials"
// @Failure 500 {object} utils.ErrorResponse "Database error"
// @Router /api/manager/login [post]
func (ac *AuthController) ManagerLogin(c fiber.Ctx) error {
	var req ManagerLoginRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Email and password required",
		})
	}

	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Email and password required",
		})
	}

	// One email can manage several locations; the first credential match wins
	var stores []models.Store
	if err := ac.DB.Where(`"managerEmail" = ?`, req.ManagerEmail).Find(&stores).Error; err != nil {
		log.Println("DB Error (manager login):", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Database error",
		})
	}

	for _, store := range stores {
		if utils.CheckPassword(req.ManagerPassword, store.ManagerPassword) {
			return c.Status(fiber.StatusOK).JSON(store.ToResponse())
		}
	}

	log.Println("Invalid credentials for manager:", req.ManagerEmail)
	return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
		Error: "Invalid credentials",
	})
}

// UserLogin authenticates a customer
// @Summary User login
// @Description Match user credentials against the user table and return the public user fields
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body UserLoginRequest true "User credentials"
// @Success 200 {object} models.UserResponse
// @Failure 400 {object} utils.ErrorResponse "Email and password required"
// @Failure 401 {object} utils.ErrorResponse "Invalid credentials"
// @Failure 500 {object} utils.ErrorResponse "Database error"
// @Router /api/user/login [post]
func (ac *AuthController) UserLogin(c fiber.Ctx) error {
	var req UserLoginRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Email and password required",
		})
	}

	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Email and password required",
		})
	}

	var users []models.User
	if err := ac.DB.Where(`"userEmail" = ?`, req.UserEmail).Find(&users).Error; err != nil {
		log.Println("DB Error (user login):", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Database error",
		})
	}

	for _, user := range users {
		if utils.CheckPassword(req.Password, user.Password) {
			return c.Status(fiber.StatusOK).JSON(user.ToResponse())
		}
	}

	log.Println("Invalid credentials for user:", req.UserEmail)
	return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
		Error: "Invalid credentials",
	})
}
