package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tender-service/internal/models"
	"tender-service/internal/tendererrors"
	"tender-service/services/helpers"
	"tender-service/utils"
)

//go:generate mockgen -source=tender_handler.go -destination=mock_service.go -package=handler
type TenderServiceInterface interface {
	GetByID(ctx context.Context, caller *models.User, id int64) (*models.Tender, error)
	ListForCaller(caller *models.User, role string, page, size int, sortBy, direction string, params map[string]string) ([]models.Tender, error)
	ListAll(page, size int, sortBy, direction string, params map[string]string) ([]models.Tender, error)
	UpdateForCaller(caller *models.User, patch *models.Tender) (*models.Tender, error)
	UpdateByAdmin(patch *models.Tender, userID, supplierID, tendererID, participantID *int64) (*models.Tender, error)
	Delete(caller *models.User, id int64) error
	AddForUserByAdmin(ctx context.Context, userID, tenderID int64) (*models.Tender, error)
	Units() ([]string, error)
	Participants() ([]models.Participant, error)
}

type TenderHandler struct {
	service TenderServiceInterface
}

func NewTenderHandler(service TenderServiceInterface) *TenderHandler {
	return &TenderHandler{service: service}
}

// GetTenderHandler handles GET /tenders/:id
func (h *TenderHandler) GetTenderHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	tender, err := h.service.GetByID(c.Request.Context(), helpers.CurrentUser(c), id)
	if err != nil {
		helpers.RespondError(c, "GetTenderHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, tender, "tender retrieved successfully")
}

// ListTendersHandler handles GET /tenders?role=USER&...filters
func (h *TenderHandler) ListTendersHandler(c *gin.Context) {
	paging, params := helpers.ListParams(c)
	role := c.DefaultQuery("role", string(models.RoleUser))

	tenders, err := h.service.ListForCaller(helpers.CurrentUser(c), role,
		paging.Page, paging.Size, paging.SortBy, paging.Direction, params)
	if err != nil {
		helpers.RespondError(c, "ListTendersHandler", err)
		return
	}
	if tenders == nil {
		tenders = []models.Tender{}
	}

	utils.JSONResponse(c, http.StatusOK, tenders, "tenders retrieved successfully")
	helpers.LogSuccess("ListTendersHandler", "tenders retrieved successfully", map[string]any{
		"role":  role,
		"count": len(tenders),
	})
}

// UpdateTenderHandler handles PATCH /tenders/:id
func (h *TenderHandler) UpdateTenderHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var patch models.Tender
	if err := c.ShouldBindJSON(&patch); err != nil {
		helpers.HandleBindError(c, "UpdateTenderHandler", err)
		return
	}
	patch.ID = id

	tender, err := h.service.UpdateForCaller(helpers.CurrentUser(c), &patch)
	if err != nil {
		helpers.RespondError(c, "UpdateTenderHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, tender, "tender updated successfully")
	helpers.LogSuccess("UpdateTenderHandler", "tender updated successfully", map[string]any{
		"tender_id": id,
	})
}

// DeleteTenderHandler handles DELETE /tenders/:id
func (h *TenderHandler) DeleteTenderHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(helpers.CurrentUser(c), id); err != nil {
		helpers.RespondError(c, "DeleteTenderHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "tender deleted successfully")
	helpers.LogSuccess("DeleteTenderHandler", "tender deleted successfully", map[string]any{
		"tender_id": id,
	})
}

// UnitsHandler handles GET /tenders/units
func (h *TenderHandler) UnitsHandler(c *gin.Context) {
	units, err := h.service.Units()
	if err != nil {
		helpers.RespondError(c, "UnitsHandler", err)
		return
	}
	if units == nil {
		units = []string{}
	}
	utils.JSONResponse(c, http.StatusOK, units, "units retrieved successfully")
}

// ParticipantsHandler handles GET /participants
func (h *TenderHandler) ParticipantsHandler(c *gin.Context) {
	participants, err := h.service.Participants()
	if err != nil {
		helpers.RespondError(c, "ParticipantsHandler", err)
		return
	}
	if participants == nil {
		participants = []models.Participant{}
	}
	utils.JSONResponse(c, http.StatusOK, participants, "participants retrieved successfully")
}

// ListAllTendersHandler handles GET /admin/tenders: every tender paired
// with its owning user.
func (h *TenderHandler) ListAllTendersHandler(c *gin.Context) {
	paging, params := helpers.ListParams(c)

	tenders, err := h.service.ListAll(paging.Page, paging.Size, paging.SortBy, paging.Direction, params)
	if err != nil {
		helpers.RespondError(c, "ListAllTendersHandler", err)
		return
	}

	pairs := make([]gin.H, 0, len(tenders))
	for i := range tenders {
		pairs = append(pairs, gin.H{
			"tender": &tenders[i],
			"user":   tenders[i].User,
		})
	}

	utils.JSONResponse(c, http.StatusOK, pairs, "tenders retrieved successfully")
	helpers.LogSuccess("ListAllTendersHandler", "tenders retrieved successfully", map[string]any{
		"count": len(pairs),
	})
}

// AdminUpdateTenderHandler handles PUT /admin/tenders/:id with optional
// slot assignment via userId/supplierId/tendererId/participantId query
// parameters.
func (h *TenderHandler) AdminUpdateTenderHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var patch models.Tender
	if err := c.ShouldBindJSON(&patch); err != nil {
		helpers.HandleBindError(c, "AdminUpdateTenderHandler", err)
		return
	}
	patch.ID = id

	userID, err := optionalIDQuery(c, "userId")
	if err != nil {
		helpers.RespondError(c, "AdminUpdateTenderHandler", err)
		return
	}
	supplierID, err := optionalIDQuery(c, "supplierId")
	if err != nil {
		helpers.RespondError(c, "AdminUpdateTenderHandler", err)
		return
	}
	tendererID, err := optionalIDQuery(c, "tendererId")
	if err != nil {
		helpers.RespondError(c, "AdminUpdateTenderHandler", err)
		return
	}
	participantID, err := optionalIDQuery(c, "participantId")
	if err != nil {
		helpers.RespondError(c, "AdminUpdateTenderHandler", err)
		return
	}

	tender, err := h.service.UpdateByAdmin(&patch, userID, supplierID, tendererID, participantID)
	if err != nil {
		helpers.RespondError(c, "AdminUpdateTenderHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, tender, "tender updated successfully")
	helpers.LogSuccess("AdminUpdateTenderHandler", "tender updated successfully", map[string]any{
		"tender_id": id,
	})
}

// AdminAddTenderHandler handles POST /admin/users/:id/tenders/:tenderId
func (h *TenderHandler) AdminAddTenderHandler(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	tenderID, ok := pathID(c, "tenderId")
	if !ok {
		return
	}

	tender, err := h.service.AddForUserByAdmin(c.Request.Context(), userID, tenderID)
	if err != nil {
		helpers.RespondError(c, "AdminAddTenderHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, tender, "tender registered successfully")
	helpers.LogSuccess("AdminAddTenderHandler", "tender registered successfully", map[string]any{
		"tender_id": tenderID,
		"user_id":   userID,
	})
}

// pathID parses a numeric path parameter, answering 400 itself on garbage.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		helpers.RespondError(c, "pathID",
			fmt.Errorf("%w: %s must be numeric", tendererrors.ErrInvalidArgument, name))
		return 0, false
	}
	return id, true
}

func optionalIDQuery(c *gin.Context, name string) (*int64, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be numeric", tendererrors.ErrInvalidArgument, name)
	}
	return &id, nil
}
