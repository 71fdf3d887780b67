package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tender-service/internal/merge"
	"tender-service/internal/models"
	"tender-service/internal/tendererrors"
	"tender-service/internal/users"
	"tender-service/services/helpers"
	"tender-service/utils"
)

type UserServiceInterface interface {
	Register(req users.RegisterRequest) (*models.User, error)
	Self(caller *models.User) *models.User
	UpdateSelf(caller *models.User, patch merge.UserPatch) (*models.User, error)
	ListByAdmin(page, size int, sortBy, direction string, params map[string]string, role string) ([]models.User, error)
	UpdateByAdmin(admin *models.User, id int64, patch merge.UserPatch) (*models.User, error)
	DeleteByAdmin(id int64) error
}

type UserHandler struct {
	service UserServiceInterface
}

func NewUserHandler(service UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterHandler handles POST /users/register
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req users.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	user, err := h.service.Register(req)
	if err != nil {
		helpers.RespondError(c, "RegisterHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, user, "user registered successfully")
	helpers.LogSuccess("RegisterHandler", "user registered successfully", map[string]any{
		"user_id": user.ID,
	})
}

// SelfHandler handles GET /users/me
func (h *UserHandler) SelfHandler(c *gin.Context) {
	user := h.service.Self(helpers.CurrentUser(c))
	utils.JSONResponse(c, http.StatusOK, user, "user retrieved successfully")
}

// UpdateSelfHandler handles PATCH /users/me
func (h *UserHandler) UpdateSelfHandler(c *gin.Context) {
	var patch merge.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		helpers.HandleBindError(c, "UpdateSelfHandler", err)
		return
	}

	user, err := h.service.UpdateSelf(helpers.CurrentUser(c), patch)
	if err != nil {
		helpers.RespondError(c, "UpdateSelfHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "user updated successfully")
	helpers.LogSuccess("UpdateSelfHandler", "user updated successfully", map[string]any{
		"user_id": user.ID,
	})
}

// ListUsersHandler handles GET /admin/users
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	paging, params := helpers.ListParams(c)
	role := c.Query("role")

	list, err := h.service.ListByAdmin(paging.Page, paging.Size, paging.SortBy, paging.Direction, params, role)
	if err != nil {
		helpers.RespondError(c, "ListUsersHandler", err)
		return
	}
	if list == nil {
		list = []models.User{}
	}

	utils.JSONResponse(c, http.StatusOK, list, "users retrieved successfully")
	helpers.LogSuccess("ListUsersHandler", "users retrieved successfully", map[string]any{
		"count": len(list),
	})
}

// AdminUpdateUserHandler handles PATCH /admin/users/:id. Id 0 addresses the
// calling admin's own record.
func (h *UserHandler) AdminUpdateUserHandler(c *gin.Context) {
	id, ok := userPathID(c)
	if !ok {
		return
	}

	var patch merge.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		helpers.HandleBindError(c, "AdminUpdateUserHandler", err)
		return
	}

	user, err := h.service.UpdateByAdmin(helpers.CurrentUser(c), id, patch)
	if err != nil {
		helpers.RespondError(c, "AdminUpdateUserHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "user updated successfully")
	helpers.LogSuccess("AdminUpdateUserHandler", "user updated successfully", map[string]any{
		"user_id": user.ID,
	})
}

// AdminDeleteUserHandler handles DELETE /admin/users/:id
func (h *UserHandler) AdminDeleteUserHandler(c *gin.Context) {
	id, ok := userPathID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteByAdmin(id); err != nil {
		helpers.RespondError(c, "AdminDeleteUserHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "user deleted successfully")
	helpers.LogSuccess("AdminDeleteUserHandler", "user deleted successfully", map[string]any{
		"user_id": id,
	})
}

func userPathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		helpers.RespondError(c, "userPathID",
			fmt.Errorf("%w: id must be numeric", tendererrors.ErrInvalidArgument))
		return 0, false
	}
	return id, true
}
