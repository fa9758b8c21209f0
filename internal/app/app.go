// Package app wires configuration, database, services and the HTTP router
// together and runs the server.
package app

import (
	"errors"
	"fmt"

	"furnimarket_backend/internal/auth"
	"furnimarket_backend/internal/config"
	"furnimarket_backend/internal/handlers"
	"furnimarket_backend/internal/logger"
	"furnimarket_backend/internal/mapper"
	"furnimarket_backend/internal/models"
	"furnimarket_backend/internal/repositories"
	"furnimarket_backend/internal/routes"
	"furnimarket_backend/internal/services"
	"furnimarket_backend/internal/storage"
	"furnimarket_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("logger initialized", "env", cfg.Server.Env)

	if cfg.Server.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("connecting to database")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("database unavailable", "error", err)
	}
	logger.Info("database connected")

	if err := Migrate(gormDB); err != nil {
		logger.Fatal("migration failed", "error", err)
	}
	if err := seedReferenceData(gormDB); err != nil {
		logger.Fatal("failed to seed reference data", "error", err)
	}
	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("failed to seed first admin user", "error", err)
	}

	engine := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "address", address)
	if err := engine.Run(address); err != nil {
		logger.Fatal("server startup error", "error", err)
	}
}

// Migrate creates or updates the schema for every domain table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.City{},
		&models.Ad{},
		&models.Attachment{},
	)
}

// SetupRouter builds the full dependency graph and returns the engine.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	logger.Info("storage initialized", "base_path", cfg.Storage.BasePath)

	userRepo := repositories.NewUserRepository()
	adRepo := repositories.NewAdRepository()
	categoryRepo := repositories.NewCategoryRepository()
	cityRepo := repositories.NewCityRepository()
	attachmentRepo := repositories.NewAttachmentRepository()

	fileService := services.NewFileService(storageInstance)
	m := mapper.NewMapper(categoryRepo, cityRepo, fileService.ImageURL)

	attachmentService := services.NewAttachmentService(
		attachmentRepo, fileService, cfg.Upload.MaxSize, cfg.Upload.AllowedExtensions)
	adService := services.NewAdService(gormDB, adRepo, attachmentService, fileService, m)
	userService := services.NewUserService(gormDB, userRepo, adRepo, m)
	authService := services.NewAuthService(gormDB, userRepo, m)
	referenceService := services.NewReferenceService(gormDB, categoryRepo, cityRepo)

	base := handlers.NewBaseHandler(validator.New())

	router := &routes.Router{
		AuthHandler:      handlers.NewAuthHandler(base, authService),
		UserHandler:      handlers.NewUserHandler(base, userService),
		AdHandler:        handlers.NewAdHandler(base, adService),
		ReferenceHandler: handlers.NewReferenceHandler(base, referenceService),

		UploadsBasePath: cfg.Storage.BasePath,
		UploadsBaseURL:  cfg.Storage.BaseURL,
	}

	return router.Setup()
}

var defaultCategories = []string{
	"Sofas", "Tables", "Chairs", "Beds", "Wardrobes", "Shelves", "Other",
}

var defaultCities = []string{
	"Athens", "Thessaloniki", "Patras", "Heraklion", "Larissa",
}

// seedReferenceData inserts the category and city reference rows on first
// start. Existing rows are left untouched.
func seedReferenceData(db *gorm.DB) error {
	referenceService := services.NewReferenceService(
		db, repositories.NewCategoryRepository(), repositories.NewCityRepository())
	return referenceService.SeedDefaults(defaultCategories, defaultCities)
}

// seedFirstAdmin creates the bootstrap admin account when none exists.
// Skipped when admin credentials are not configured.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		logger.Warn("admin credentials not configured, skipping admin seeding")
		return nil
	}

	var admin models.User
	err := db.Where("username = ?", cfg.Admin.Username).First(&admin).Error
	if err == nil {
		logger.Info("admin user already exists", "username", cfg.Admin.Username)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check for admin user: %w", err)
	}

	logger.Warn("no admin user found, creating first admin", "username", cfg.Admin.Username)

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	isActive := true
	newAdmin := &models.User{
		Username:     cfg.Admin.Username,
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
		FirstName:    "System",
		LastName:     "Admin",
		Phone:        "-",
		Role:         models.UserRoleAdmin,
		IsActive:     &isActive,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	logger.Info("first admin user created", "username", cfg.Admin.Username)
	return nil
}
