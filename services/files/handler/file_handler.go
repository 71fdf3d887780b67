package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tender-service/internal/models"
	"tender-service/internal/tendererrors"
	"tender-service/services/helpers"
	"tender-service/utils"
)

type FileServiceInterface interface {
	Save(caller *models.User, tenderID int64, fileName string, src io.Reader) (*models.File, error)
	SaveByAdmin(tenderID int64, fileName string, src io.Reader) (*models.File, error)
	Load(caller *models.User, tenderID int64, storedName string) (*models.File, io.ReadCloser, error)
	LoadByAdmin(tenderID int64, storedName string) (*models.File, io.ReadCloser, error)
	Delete(caller *models.User, tenderID int64, storedName string) error
	DeleteByAdmin(tenderID int64, storedName string) error
}

type FileHandler struct {
	service FileServiceInterface
}

func NewFileHandler(service FileServiceInterface) *FileHandler {
	return &FileHandler{service: service}
}

// UploadHandler handles POST /tenders/:id/files (multipart form, field "file")
func (h *FileHandler) UploadHandler(c *gin.Context) {
	h.upload(c, func(tenderID int64, fileName string, src io.Reader) (*models.File, error) {
		return h.service.Save(helpers.CurrentUser(c), tenderID, fileName, src)
	})
}

// AdminUploadHandler handles POST /admin/tenders/:id/files
func (h *FileHandler) AdminUploadHandler(c *gin.Context) {
	h.upload(c, h.service.SaveByAdmin)
}

func (h *FileHandler) upload(c *gin.Context, save func(int64, string, io.Reader) (*models.File, error)) {
	tenderID, ok := tenderPathID(c)
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		helpers.RespondError(c, "UploadHandler",
			fmt.Errorf("%w: multipart field \"file\" required", tendererrors.ErrInvalidArgument))
		return
	}

	src, err := header.Open()
	if err != nil {
		helpers.RespondError(c, "UploadHandler", fmt.Errorf("%w: %v", tendererrors.ErrStorage, err))
		return
	}
	defer src.Close()

	file, err := save(tenderID, header.Filename, src)
	if err != nil {
		helpers.RespondError(c, "UploadHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, file, "file uploaded successfully")
	helpers.LogSuccess("UploadHandler", "file uploaded successfully", map[string]any{
		"tender_id":   tenderID,
		"stored_name": file.StoredName,
		"size":        file.Size,
	})
}

// DownloadHandler handles GET /tenders/:id/files/:name
func (h *FileHandler) DownloadHandler(c *gin.Context) {
	h.download(c, func(tenderID int64, storedName string) (*models.File, io.ReadCloser, error) {
		return h.service.Load(helpers.CurrentUser(c), tenderID, storedName)
	})
}

// AdminDownloadHandler handles GET /admin/tenders/:id/files/:name
func (h *FileHandler) AdminDownloadHandler(c *gin.Context) {
	h.download(c, h.service.LoadByAdmin)
}

func (h *FileHandler) download(c *gin.Context, load func(int64, string) (*models.File, io.ReadCloser, error)) {
	tenderID, ok := tenderPathID(c)
	if !ok {
		return
	}
	storedName := c.Param("name")

	file, rc, err := load(tenderID, storedName)
	if err != nil {
		helpers.RespondError(c, "DownloadHandler", err)
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
	c.Header("Content-Length", strconv.FormatInt(file.Size, 10))
	c.DataFromReader(http.StatusOK, file.Size, "application/octet-stream", rc, nil)
}

// DeleteHandler handles DELETE /tenders/:id/files/:name
func (h *FileHandler) DeleteHandler(c *gin.Context) {
	h.remove(c, func(tenderID int64, storedName string) error {
		return h.service.Delete(helpers.CurrentUser(c), tenderID, storedName)
	})
}

// AdminDeleteHandler handles DELETE /admin/tenders/:id/files/:name
func (h *FileHandler) AdminDeleteHandler(c *gin.Context) {
	h.remove(c, h.service.DeleteByAdmin)
}

func (h *FileHandler) remove(c *gin.Context, del func(int64, string) error) {
	tenderID, ok := tenderPathID(c)
	if !ok {
		return
	}
	storedName := c.Param("name")

	if err := del(tenderID, storedName); err != nil {
		helpers.RespondError(c, "DeleteFileHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "file deleted successfully")
	helpers.LogSuccess("DeleteFileHandler", "file deleted successfully", map[string]any{
		"tender_id":   tenderID,
		"stored_name": storedName,
	})
}

func tenderPathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		helpers.RespondError(c, "tenderPathID",
			fmt.Errorf("%w: id must be numeric", tendererrors.ErrInvalidArgument))
		return 0, false
	}
	return id, true
}
