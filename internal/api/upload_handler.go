package api

import (
	"net/http"

	"fittrack/fitness-tracker/internal/metrics"
	"fittrack/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// UploadHandler exposes presigned image upload and download URLs.
type UploadHandler struct {
	imageService service.ImageService
	log          logrus.FieldLogger
}

func NewUploadHandler(imageService service.ImageService, log logrus.FieldLogger) *UploadHandler {
	return &UploadHandler{imageService: imageService, log: log}
}

type UploadURLRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

type ConfirmUploadRequest struct {
	ObjectKey   string `json:"objectKey" binding:"required"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType" binding:"required"`
	Size        int64  `json:"size" binding:"gte=0"`
}

// RequestImageUploadURL godoc
// @Summary Get a presigned URL to PUT an image
// @Tags Uploads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UploadURLRequest true "Content type of the image"
// @Success 200 {object} Envelope "data holds uploadUrl and objectKey"
// @Failure 400 {object} Envelope "Not an image content type"
// @Router /uploads/images [post]
func (h *UploadHandler) RequestImageUploadURL(c *gin.Context) {
	userID, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var req UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	resp, err := h.imageService.RequestUploadURL(c.Request.Context(), userID, req.ContentType)
	if err != nil {
		abortWithServiceError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "Upload URL generated", resp)
}

// ConfirmImageUpload records an image the client finished uploading.
func (h *UploadHandler) ConfirmImageUpload(c *gin.Context) {
	userID, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var req ConfirmUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	upload, err := h.imageService.ConfirmUpload(c.Request.Context(), userID, service.ConfirmUploadInput{
		ObjectKey:   req.ObjectKey,
		FileName:    req.FileName,
		ContentType: req.ContentType,
		Size:        req.Size,
	})
	if err != nil {
		abortWithServiceError(c, h.log, err)
		return
	}
	metrics.RecordCreated("upload")
	respond(c, http.StatusCreated, "Upload recorded", upload)
}

func (h *UploadHandler) GetDownloadURL(c *gin.Context) {
	userID, ok := mustPrincipal(c)
	if !ok {
		return
	}
	url, err := h.imageService.GetDownloadURL(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		abortWithServiceError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "Download URL generated", gin.H{"url": url})
}

func (h *UploadHandler) DeleteUpload(c *gin.Context) {
	userID, ok := mustPrincipal(c)
	if !ok {
		return
	}
	if err := h.imageService.DeleteUpload(c.Request.Context(), userID, c.Param("id")); err != nil {
		abortWithServiceError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "Upload deleted successfully", nil)
}
