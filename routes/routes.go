package routes

import (
	"time"

	"assist-fiber-backend/config"
	"assist-fiber-backend/controllers"

	"github.com/gofiber/fiber/v3"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, cfg *config.Config, db *gorm.DB) {

	// Controllers
	announcementController := controllers.NewAnnouncementController(db)
	authController := controllers.NewAuthController(db)
	managerQuietTimeController := controllers.NewManagerQuietTimeController(db)
	userQuietTimeController := controllers.NewUserQuietTimeController(db)

	// Public routes
	api := app.Group("/api")

	// Health check
	api.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"Aplication": cfg.AppName,
			"Version":    "1.0.0",
			"message":    "Health check successful",
			"status":     "ok",
			"Time":       time.Now().Format("02-01-2006 15:04:05"),
		})
	})

	// Manager routes
	manager := api.Group("/manager")
	manager.Post("/announcement", announcementController.CreateAnnouncement)
	manager.Get("/announcement", announcementController.GetAnnouncements)
	manager.Post("/login", authController.ManagerLogin)
	manager.Get("/quiettime", managerQuietTimeController.GetQuietTimeRequests)
	manager.Put("/quiettime", managerQuietTimeController.UpdateQuietTimeStatus)

	// User routes
	user := api.Group("/user")
	user.Post("/login", authController.UserLogin)
	user.Post("/quiettime", userQuietTimeController.CreateQuietTime)
	user.Get("/quiettime", userQuietTimeController.GetQuietTimeRequests)

	// API Documentation routes - Serve static swagger files
	app.Get("/docs/swagger.json", func(c fiber.Ctx) error {
		return c.SendFile("./docs/swagger.json")
	})

	app.Get("/docs/swagger.yaml", func(c fiber.Ctx) error {
		return c.SendFile("./docs/swagger.yaml")
	})

	// RapiDoc HTML page
	app.Get("/rapidoc", func(c fiber.Ctx) error {
		html := `<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Retail Assist API Documentation</title>
  <script type="module" src="https://unpkg.com/rapidoc/dist/rapidoc-min.js"></script>
</head>
<body>
  <rapi-doc
        spec-url="/docs/swagger.yaml"
        theme="dark"
        bg-color="#1a1a1a"
        text-color="#f0f0f0"
        primary-color="#4caf50"
        nav-bg-color="#2d2d2d"
        nav-text-color="#ffffff"
        nav-hover-bg-color="#404040"
        render-style="read"
        layout="column"
        schema-style="tree"
        show-header="true"
        show-info="true"
        allow-try="true">
  </rapi-doc>
</body>
</html>`
		c.Set("Content-Type", "text/html")
		return c.SendString(html)
	})
}
