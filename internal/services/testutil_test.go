package services

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"testing"

	"furnimarket_backend/internal/mapper"
	"furnimarket_backend/internal/models"
	"furnimarket_backend/internal/repositories"
	"furnimarket_backend/internal/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires the full service stack against an in-memory database and a
// throwaway upload directory.
type testEnv struct {
	db                *gorm.DB
	adService         *AdService
	userService       *UserService
	authService       *AuthService
	attachmentService *AttachmentService
	uploadDir         string
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Category{}, &models.City{},
		&models.Ad{}, &models.Attachment{},
	))

	uploadDir := t.TempDir()
	st, err := storage.NewStorage(storage.Config{BasePath: uploadDir, BaseURL: "/uploads"})
	require.NoError(t, err)

	userRepo := repositories.NewUserRepository()
	adRepo := repositories.NewAdRepository()
	categoryRepo := repositories.NewCategoryRepository()
	cityRepo := repositories.NewCityRepository()
	attachmentRepo := repositories.NewAttachmentRepository()

	fileService := NewFileService(st)
	m := mapper.NewMapper(categoryRepo, cityRepo, fileService.ImageURL)
	attachmentService := NewAttachmentService(attachmentRepo, fileService, 1<<20, []string{"jpg", "jpeg", "png", "gif", "webp"})

	return &testEnv{
		db:                db,
		adService:         NewAdService(db, adRepo, attachmentService, fileService, m),
		userService:       NewUserService(db, userRepo, adRepo, m),
		authService:       NewAuthService(db, userRepo, m),
		attachmentService: attachmentService,
		uploadDir:         uploadDir,
	}
}

func (e *testEnv) seedReference(t *testing.T) (models.Category, models.City) {
	t.Helper()
	category := models.Category{Name: "Sofas"}
	city := models.City{Name: "Athens"}
	require.NoError(t, e.db.Create(&category).Error)
	require.NoError(t, e.db.Create(&city).Error)
	return category, city
}

func (e *testEnv) seedUser(t *testing.T, username string, role models.UserRole) models.User {
	t.Helper()
	isActive := true
	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		FirstName:    "Test",
		LastName:     "User",
		Phone:        "555-0000",
		Role:         role,
		IsActive:     &isActive,
	}
	require.NoError(t, e.db.Create(&user).Error)
	return user
}

func (e *testEnv) seedAd(t *testing.T, owner models.User, title string, rawPrice string) models.Ad {
	t.Helper()
	category, city := models.Category{}, models.City{}
	require.NoError(t, e.db.FirstOrCreate(&category, models.Category{Name: "Sofas"}).Error)
	require.NoError(t, e.db.FirstOrCreate(&city, models.City{Name: "Athens"}).Error)

	isAvailable := true
	ad := models.Ad{
		Title:       title,
		Description: "seeded ad",
		Price:       decimal.RequireFromString(rawPrice),
		Condition:   models.ConditionGood,
		IsAvailable: &isAvailable,
		CategoryID:  category.ID,
		CityID:      city.ID,
		UserID:      owner.ID,
	}
	require.NoError(t, e.db.Create(&ad).Error)
	return ad
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// makeImageHeader builds a real multipart.FileHeader the way Gin would
// produce one from an upload.
func makeImageHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, filename))
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}

	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["image"]
	require.Len(t, files, 1)
	return files[0]
}
