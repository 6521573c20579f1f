package main

import (
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"assist-fiber-backend/config"
	"assist-fiber-backend/database"
	"assist-fiber-backend/routes"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// @title Retail Assist API Documentation
// @version 1.0
// @description Accessibility-oriented retail assistance API: store announcements, quiet time requests and manager/user login
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@retailassist.local

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /
// @schemes http https

// matchOriginPattern checks if an origin matches a pattern with wildcards
func matchOriginPattern(pattern, origin string) bool {
	if !strings.Contains(pattern, "*") {
		return false
	}

	// Split by wildcard
	parts := strings.Split(pattern, "*")
	if len(parts) != 2 {
		return false
	}

	// Check if origin starts with the part before * and ends with the part after *
	return strings.HasPrefix(origin, parts[0]) && strings.HasSuffix(origin, parts[1])
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Load configuration
	cfg := config.LoadConfig()

	// Initialize database; the handle is injected everywhere, no package global
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("❌ %v", err)
	}
	if err := database.SeedInitialStore(db); err != nil {
		log.Fatalf("❌ %v", err)
	}
	if err := database.SeedInitialUser(db); err != nil {
		log.Fatalf("❌ %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
		AppName:      cfg.AppName,
		ServerHeader: "Fiber",
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	// Configure CORS based on origins
	corsConfig := cors.Config{
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        86400, // 24 hours
	}

	// If origins contain wildcard, don't use credentials
	if len(cfg.CorsOrigins) == 1 && cfg.CorsOrigins[0] == "*" {
		corsConfig.AllowOrigins = []string{"*"}
		corsConfig.AllowCredentials = false
	} else {
		// Use custom origin validator to support wildcard patterns
		corsConfig.AllowOriginsFunc = func(origin string) bool {
			for _, allowedOrigin := range cfg.CorsOrigins {
				// Exact match
				if origin == allowedOrigin {
					return true
				}
				// Pattern match (e.g., http://192.168.41.*:3000)
				if matchOriginPattern(allowedOrigin, origin) {
					return true
				}
			}
			return false
		}
		corsConfig.AllowCredentials = true
	}

	app.Use(cors.New(corsConfig))
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 60 * time.Second,
	}))

	// Setup routes
	routes.SetupRoutes(app, cfg, db)

	// Graceful shutdown: drain the server, then close the pool
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Println("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("x Server shutdown failed: %v", err)
		}
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Printf("x Closing database pool failed: %v", err)
			}
		}
	}()

	// Start server
	log.Println("════════════════════════════════════════════════════════════")
	log.Printf("✓ Server ready on port %s", cfg.Port)
	log.Printf("📊 Health check: %s/api/health", cfg.AppUrl)
	log.Printf("📚 API documentation: %s/rapidoc", cfg.AppUrl)
	log.Println("════════════════════════════════════════════════════════════")

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
