package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"furnimarket_backend/internal/config"
	"furnimarket_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 5
	cfg.Storage.BasePath = t.TempDir()
	cfg.Storage.BaseURL = "/uploads"
	cfg.Upload.MaxSize = 1 << 20
	cfg.Upload.AllowedExtensions = []string{"jpg", "jpeg", "png", "gif", "webp"}

	prev := config.AppConfig
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = prev })

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	require.NoError(t, seedReferenceData(db))

	return SetupRouter(cfg, db), db
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, engine *gin.Engine, username string) (token string, userID uint) {
	t.Helper()

	w := doJSON(t, engine, http.MethodPost, "/api/users", "", gin.H{
		"username":  username,
		"email":     username + "@example.com",
		"password":  "Sup3rSecret!",
		"firstName": "Test",
		"lastName":  "User",
		"phone":     "555-0000",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, engine, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": username,
		"password": "Sup3rSecret!",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token, resp.User.ID
}

func postAd(t *testing.T, engine *gin.Engine, token, title string) uint {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fields := map[string]string{
		"title":        title,
		"description":  "a fine piece of furniture",
		"price":        "199.90",
		"condition":    "GOOD",
		"categoryName": "Sofas",
		"cityName":     "Athens",
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/ads", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var ad struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ad))
	return ad.ID
}

func TestRegisterLoginAndPostAd(t *testing.T) {
	engine, _ := setupTestServer(t)

	token, _ := registerAndLogin(t, engine, "alice")
	adID := postAd(t, engine, token, "Leather Sofa")

	w := doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/ads/%d", adID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Leather Sofa")
	assert.Contains(t, w.Body.String(), `"Sofas"`)
}

func TestRegisterValidation(t *testing.T) {
	engine, _ := setupTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/users", "", gin.H{
		"username":  "x",
		"email":     "not-an-email",
		"password":  "weak",
		"firstName": "Test",
		"lastName":  "User",
		"phone":     "555-0000",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_FAILED")
}

func TestAdWriteRequiresAuth(t *testing.T) {
	engine, _ := setupTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/ads", "", gin.H{"title": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSearchEndpoints(t *testing.T) {
	engine, _ := setupTestServer(t)
	token, _ := registerAndLogin(t, engine, "alice")
	postAd(t, engine, token, "Leather Sofa")
	postAd(t, engine, token, "Oak Table")

	// Bare list via query parameters, anonymous.
	w := doJSON(t, engine, http.MethodGet, "/api/ads/search?title=sofa", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)

	// Envelope via JSON body.
	w = doJSON(t, engine, http.MethodPost, "/api/ads/search/paginated", "", gin.H{
		"minPrice": "100",
		"pageSize": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var envelope struct {
		TotalElements int64 `json:"totalElements"`
		TotalPages    int   `json:"totalPages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, int64(2), envelope.TotalElements)
	assert.Equal(t, 2, envelope.TotalPages)

	// Malformed price is a client error, not a silent no-op.
	w = doJSON(t, engine, http.MethodGet, "/api/ads/search?minPrice=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// An unknown condition is rejected on both search entry points.
	w = doJSON(t, engine, http.MethodGet, "/api/ads/search/paginated?condition=MINT", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(t, engine, http.MethodPost, "/api/ads/search/paginated", "", gin.H{
		"condition": "MINT",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_ARGUMENT")
}

func TestReferenceDataEndpoints(t *testing.T) {
	engine, _ := setupTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/api/categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var categories []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	require.Len(t, categories, len(defaultCategories))
	assert.Equal(t, "Beds", categories[0]["name"])

	w = doJSON(t, engine, http.MethodGet, "/api/cities", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cities []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cities))
	require.Len(t, cities, len(defaultCities))
	assert.Equal(t, "Athens", cities[0]["name"])
}

func TestMyAdsFilter(t *testing.T) {
	engine, _ := setupTestServer(t)
	aliceToken, _ := registerAndLogin(t, engine, "alice")
	bobToken, _ := registerAndLogin(t, engine, "bob")
	postAd(t, engine, aliceToken, "Alice Sofa")
	postAd(t, engine, bobToken, "Bob Table")

	w := doJSON(t, engine, http.MethodGet, "/api/ads/search?myAds=true", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Bob Table", list[0]["title"])

	// Anonymous callers see everything even with the flag set.
	w = doJSON(t, engine, http.MethodGet, "/api/ads/search?myAds=true", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 2)
}

func TestAdminSurfaceRequiresAdminRole(t *testing.T) {
	engine, db := setupTestServer(t)
	userToken, _ := registerAndLogin(t, engine, "alice")

	w := doJSON(t, engine, http.MethodGet, "/api/users/paginated", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Promote directly in the database, then log in again for a fresh token.
	require.NoError(t, db.Model(&models.User{}).Where("username = ?", "alice").
		Update("role", models.UserRoleAdmin).Error)
	adminToken, _ := registerAndLogin2(t, engine, "alice")

	w = doJSON(t, engine, http.MethodGet, "/api/users/paginated", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

// registerAndLogin2 logs in an existing account.
func registerAndLogin2(t *testing.T, engine *gin.Engine, username string) (string, uint) {
	t.Helper()
	w := doJSON(t, engine, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": username,
		"password": "Sup3rSecret!",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token, resp.User.ID
}

func TestAdminDeletesUserByUsername(t *testing.T) {
	engine, db := setupTestServer(t)
	_, _ = registerAndLogin(t, engine, "victim")
	adminToken := seedAdminAndLogin(t, engine, db)

	w := doJSON(t, engine, http.MethodDelete, "/api/users/victim", adminToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, engine, http.MethodDelete, "/api/users/victim", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminCannotDeleteUserWithAds(t *testing.T) {
	engine, db := setupTestServer(t)
	sellerToken, _ := registerAndLogin(t, engine, "seller")
	postAd(t, engine, sellerToken, "Sofa For Sale")
	adminToken := seedAdminAndLogin(t, engine, db)

	w := doJSON(t, engine, http.MethodDelete, "/api/users/seller", adminToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "REFERENTIAL_INTEGRITY")
}

func seedAdminAndLogin(t *testing.T, engine *gin.Engine, db *gorm.DB) string {
	t.Helper()
	_, _ = registerAndLogin(t, engine, "root")
	require.NoError(t, db.Model(&models.User{}).Where("username = ?", "root").
		Update("role", models.UserRoleAdmin).Error)
	token, _ := registerAndLogin2(t, engine, "root")
	return token
}

func TestSeedReferenceDataIsIdempotent(t *testing.T) {
	_, db := setupTestServer(t)

	require.NoError(t, seedReferenceData(db))

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.Equal(t, int64(len(defaultCategories)), count)
}

func TestSeedFirstAdmin(t *testing.T) {
	_, db := setupTestServer(t)

	cfg := config.AppConfig
	cfg.Admin.Username = "sysadmin"
	cfg.Admin.Password = "Bootstrap1!"
	cfg.Admin.Email = "sysadmin@example.com"

	require.NoError(t, seedFirstAdmin(db, cfg))
	require.NoError(t, seedFirstAdmin(db, cfg))

	var admins []models.User
	require.NoError(t, db.Where("username = ?", "sysadmin").Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.Equal(t, models.UserRoleAdmin, admins[0].Role)
	assert.True(t, strings.HasPrefix(admins[0].PasswordHash, "$2"))
}
