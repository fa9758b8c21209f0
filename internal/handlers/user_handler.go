package handlers

import (
	"net/http"

	"furnimarket_backend/internal/appErrors"
	"furnimarket_backend/internal/filters"
	"furnimarket_backend/internal/middleware"
	"furnimarket_backend/internal/models"
	"furnimarket_backend/internal/services"
	"furnimarket_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	BaseHandler
	userService *services.UserService
}

func NewUserHandler(base BaseHandler, userService *services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

// RegisterRoutes mounts the user endpoints. Registration is public; the
// management surface is admin only.
func (h *UserHandler) RegisterRoutes(api *gin.RouterGroup) {
	users := api.Group("/users")

	users.POST("", h.Register)

	admin := users.Group("", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	admin.GET("/paginated", h.GetPaginated)
	admin.GET("/paginated/sorted", h.GetPaginatedSorted)
	admin.GET("/filtered", h.GetFiltered)
	admin.PUT("/:id/role", h.UpdateRole)
	admin.DELETE("/:username", h.Delete)
}

func (h *UserHandler) Register(c *gin.Context) {
	var in dto.UserInsertDTO
	if !h.BindJSON(c, &in) {
		return
	}
	user, err := h.userService.RegisterUser(in)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) GetPaginated(c *gin.Context) {
	var f filters.GenericFilters
	if !h.BindQuery(c, &f) {
		return
	}
	page, err := h.userService.GetPaginatedUsers(f.Page, f.PageSize)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *UserHandler) GetPaginatedSorted(c *gin.Context) {
	var f filters.GenericFilters
	if !h.BindQuery(c, &f) {
		return
	}
	page, err := h.userService.GetPaginatedSortedUsers(f)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *UserHandler) GetFiltered(c *gin.Context) {
	var f filters.UserFilters
	if !h.BindQuery(c, &f) {
		return
	}
	page, err := h.userService.GetUsersFiltered(f)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *UserHandler) UpdateRole(c *gin.Context) {
	id, ok := UintParam(c, "id")
	if !ok {
		return
	}
	var in dto.UserRoleUpdateDTO
	if !h.BindJSON(c, &in) {
		return
	}
	user, err := h.userService.UpdateUserRole(id, in.Role)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	username := c.Param("username")
	if err := h.userService.DeleteUserByUsername(username); err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
