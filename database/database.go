package database

import (
	"fmt"
	"log"
	"time"

	"assist-fiber-backend/config"
	"assist-fiber-backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the shared connection pool and returns the handle.
// The caller owns the lifecycle: close the underlying *sql.DB on shutdown.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		cfg.DbHost,
		cfg.DbPort,
		cfg.DbUser,
		cfg.DbPass,
		cfg.DbName,
		cfg.DbSslMode,
		cfg.DbTz,
	)

	// Configure GORM logger based on environment
	gormLogger := logger.Default
	if cfg.Env == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	maxRetries := 5
	retryInterval := time.Second * 10

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.Printf("Attempting to connect to database (attempt %d/%d)...", attempt, maxRetries)

		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormLogger,
		})

		if err == nil {
			sqlDB, err := db.DB()

			if err == nil {
				err = sqlDB.Ping()
				if err == nil {
					// Set connection pool settings
					sqlDB.SetMaxIdleConns(10)
					sqlDB.SetMaxOpenConns(100)
					sqlDB.SetConnMaxLifetime(time.Hour)

					log.Println("Database connection established.")
					return db, nil
				}
				log.Printf("x Database ping failed: %v", err)
			} else {
				log.Printf("x Failed to get database instance: %v", err)
			}
		} else {
			log.Printf("x Failed to connect to database: %v", err)
		}

		if attempt < maxRetries {
			log.Printf("Retrying in %s...", retryInterval)
			time.Sleep(retryInterval)
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts", maxRetries)
}

// Migrate performs automatic migration of database schemas
func Migrate(db *gorm.DB) error {
	log.Println("🔄 Starting database migration...")

	err := db.AutoMigrate(
		&models.Store{},
		&models.User{},
		&models.Announcement{},
		&models.QuietTime{},
	)

	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("✅ Database migrations completed successfully")
	return nil
}

// SeedInitialStore seeds the read-only store rows the API matches logins against
func SeedInitialStore(db *gorm.DB) error {
	log.Println("🌱 Seeding initial store data into the database...")

	stores := []models.Store{
		{ManagerEmail: "manager.main@walmart.com", ManagerPassword: "manager123", StoreLocation: "Walmart Supercenter - Main St"},
		{ManagerEmail: "manager.oak@walmart.com", ManagerPassword: "manager123", StoreLocation: "Walmart Neighborhood Market - Oak Ave"},
		{ManagerEmail: "manager.river@walmart.com", ManagerPassword: "manager123", StoreLocation: "Walmart Supercenter - River Rd"},
	}

	for _, storeData := range stores {
		var existingStore models.Store
		result := db.Where(`"managerEmail" = ?`, storeData.ManagerEmail).First(&existingStore)

		if result.Error == gorm.ErrRecordNotFound {
			store := models.Store{
				ManagerEmail:    storeData.ManagerEmail,
				ManagerPassword: storeData.ManagerPassword,
				StoreLocation:   storeData.StoreLocation,
			}

			if err := db.Create(&store).Error; err != nil {
				return fmt.Errorf("failed to create store %s: %w", storeData.StoreLocation, err)
			}
		}
	}

	log.Println("✅ Stores seeding completed successfully")
	return nil
}

// SeedInitialUser seeds the read-only customer accounts
func SeedInitialUser(db *gorm.DB) error {
	log.Println("🌱 Seeding initial user data into the database...")

	users := []models.User{
		{UserEmail: "alex.johnson@example.com", Password: "password123", Name: "Alex Johnson"},
		{UserEmail: "sam.taylor@example.com", Password: "password123", Name: "Sam Taylor"},
		{UserEmail: "jordan.smith@example.com", Password: "password123", Name: "Jordan Smith"},
	}

	for _, userData := range users {
		var existingUser models.User
		result := db.Where(`"userEmail" = ?`, userData.UserEmail).First(&existingUser)

		if result.Error == gorm.ErrRecordNotFound {
			user := models.User{
				UserEmail: userData.UserEmail,
				Password:  userData.Password,
				Name:      userData.Name,
			}

			if err := db.Create(&user).Error; err != nil {
				return fmt.Errorf("failed to create user %s: %w", userData.UserEmail, err)
			}
		}
	}

	log.Println("✅ Users seeding completed successfully")
	return nil
}
