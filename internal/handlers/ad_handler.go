package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"furnimarket_backend/internal/appErrors"
	"furnimarket_backend/internal/filters"
	"furnimarket_backend/internal/middleware"
	"furnimarket_backend/internal/services"
	"furnimarket_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AdHandler struct {
	BaseHandler
	adService *services.AdService
}

func NewAdHandler(base BaseHandler, adService *services.AdService) *AdHandler {
	return &AdHandler{
		BaseHandler: base,
		adService:   adService,
	}
}

// RegisterRoutes mounts the ad endpoints. Reads are public (search honors
// an optional token for the owner-only filter); writes require a login.
func (h *AdHandler) RegisterRoutes(api *gin.RouterGroup) {
	ads := api.Group("/ads")

	ads.GET("", h.GetPaginated)
	ads.GET("/sorted", h.GetPaginatedSorted)
	ads.GET("/available", h.GetAvailable)
	ads.GET("/user/:userId", h.GetByUser)
	ads.GET("/:id", h.GetByID)

	search := ads.Group("", middleware.OptionalAuthMiddleware())
	search.GET("/search", h.Search)
	search.GET("/search/paginated", h.SearchPaginatedQuery)
	search.POST("/search/paginated", h.SearchPaginatedBody)

	authed := ads.Group("", middleware.AuthMiddleware())
	authed.GET("/my-ads", h.GetMyAds)
	authed.POST("", h.Create)
	authed.PUT("/:id", h.Update)
	authed.DELETE("/:id", h.Delete)
}

func (h *AdHandler) GetByID(c *gin.Context) {
	id, ok := UintParam(c, "id")
	if !ok {
		return
	}
	ad, err := h.adService.GetAdByID(id)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ad)
}

func (h *AdHandler) GetAvailable(c *gin.Context) {
	ads, err := h.adService.GetAvailableAds()
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ads)
}

func (h *AdHandler) GetByUser(c *gin.Context) {
	userID, ok := UintParam(c, "userId")
	if !ok {
		return
	}
	ads, err := h.adService.GetAdsByUserID(userID)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ads)
}

func (h *AdHandler) GetMyAds(c *gin.Context) {
	ads, err := h.adService.GetAdsByUserID(middleware.CurrentUserID(c))
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ads)
}

func (h *AdHandler) GetPaginated(c *gin.Context) {
	var f filters.GenericFilters
	if !h.BindQuery(c, &f) {
		return
	}
	page, err := h.adService.GetPaginatedAds(f.Page, f.PageSize)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *AdHandler) GetPaginatedSorted(c *gin.Context) {
	var f filters.GenericFilters
	if !h.BindQuery(c, &f) {
		return
	}
	page, err := h.adService.GetPaginatedSortedAds(f)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Search returns the bare list of matching ads.
func (h *AdHandler) Search(c *gin.Context) {
	var req dto.AdSearchRequest
	if !h.BindQuery(c, &req) {
		return
	}
	f, err := req.ToAdFilters()
	if err != nil {
		handleFieldError(c, err)
		return
	}
	ads, err := h.adService.GetAdsFiltered(&f, middleware.CurrentUserID(c))
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ads)
}

// SearchPaginatedQuery is the query-parameter variant of paginated search.
func (h *AdHandler) SearchPaginatedQuery(c *gin.Context) {
	var req dto.AdSearchRequest
	if !h.BindQuery(c, &req) {
		return
	}
	f, err := req.ToAdFilters()
	if err != nil {
		handleFieldError(c, err)
		return
	}
	h.searchPaginated(c, f)
}

// SearchPaginatedBody is the JSON-body variant of paginated search.
func (h *AdHandler) SearchPaginatedBody(c *gin.Context) {
	var f filters.AdFilters
	if !h.BindJSON(c, &f) {
		return
	}
	if f.Condition != nil && !f.Condition.Valid() {
		appErrors.HandleError(c, appErrors.InvalidArgument("unknown condition: "+string(*f.Condition)))
		return
	}
	h.searchPaginated(c, f)
}

func (h *AdHandler) searchPaginated(c *gin.Context, f filters.AdFilters) {
	page, err := h.adService.GetAdsFilteredPaginated(f, middleware.CurrentUserID(c))
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *AdHandler) Create(c *gin.Context) {
	in, image, ok := h.bindAdForm(c)
	if !ok {
		return
	}
	ad, err := h.adService.CreateAd(c.Request.Context(), middleware.CurrentUserID(c), in, image)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ad)
}

func (h *AdHandler) Update(c *gin.Context) {
	id, ok := UintParam(c, "id")
	if !ok {
		return
	}
	in, image, ok := h.bindAdForm(c)
	if !ok {
		return
	}
	role, _ := middleware.CurrentRole(c)
	ad, err := h.adService.UpdateAd(c.Request.Context(), id, middleware.CurrentUserID(c), role, in, image)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ad)
}

func (h *AdHandler) Delete(c *gin.Context) {
	id, ok := UintParam(c, "id")
	if !ok {
		return
	}
	role, _ := middleware.CurrentRole(c)
	if err := h.adService.DeleteAd(c.Request.Context(), id, middleware.CurrentUserID(c), role); err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// bindAdForm binds the multipart form fields and the optional image part,
// then validates the assembled DTO.
func (h *AdHandler) bindAdForm(c *gin.Context) (dto.AdInsertDTO, *multipart.FileHeader, bool) {
	var form dto.AdInsertForm
	if err := c.ShouldBind(&form); err != nil {
		appErrors.HandleError(c, appErrors.InvalidArgument("malformed form data: "+err.Error()))
		return dto.AdInsertDTO{}, nil, false
	}

	in, err := form.ToInsertDTO()
	if err != nil {
		handleFieldError(c, err)
		return dto.AdInsertDTO{}, nil, false
	}
	if !h.Validate(c, &in) {
		return dto.AdInsertDTO{}, nil, false
	}

	image, err := c.FormFile("image")
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
			appErrors.HandleError(c, appErrors.InvalidArgument("malformed image upload"))
			return dto.AdInsertDTO{}, nil, false
		}
		image = nil
	}
	return in, image, true
}
