package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marcos-nsantos/detection-map-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/detection-map-backend/internal/pkg/httputil"
	"github.com/marcos-nsantos/detection-map-backend/internal/usecase/upload"
)

const DefaultMaxUploadSize = 10 << 20 // 10MB

var picDateLayouts = []string{time.RFC3339, "2006-01-02"}

type UploadHandler struct {
	uploadSvc     UploadService
	maxUploadSize int64
}

func NewUploadHandler(uploadSvc UploadService, maxUploadSize int64) *UploadHandler {
	if maxUploadSize <= 0 {
		maxUploadSize = DefaultMaxUploadSize
	}
	return &UploadHandler{uploadSvc: uploadSvc, maxUploadSize: maxUploadSize}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	infoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid information id")
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_FILE", "file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !isAllowedImageType(contentType) {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_TYPE", "only jpeg and png images are allowed")
		return
	}

	var picDate *time.Time
	if raw := c.Request.FormValue("pic_date"); raw != "" {
		parsed, ok := parsePicDate(raw)
		if !ok {
			httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_PIC_DATE", "pic_date must be RFC3339 or YYYY-MM-DD")
			return
		}
		picDate = &parsed
	}

	result, err := h.uploadSvc.Upload(c.Request.Context(), upload.UploadInput{
		InformationID: infoID,
		File:          file,
		Filename:      header.Filename,
		ContentType:   contentType,
		Size:          header.Size,
		PicDate:       picDate,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.Created(c, response.UploadResultToResponse(result))
}

func (h *UploadHandler) Delete(c *gin.Context) {
	imageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid image id")
		return
	}

	if err := h.uploadSvc.Delete(c.Request.Context(), imageID); err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.NoContent(c)
}

func isAllowedImageType(contentType string) bool {
	return contentType == "image/jpeg" || contentType == "image/png" || contentType == "image/jpg"
}

func parsePicDate(raw string) (time.Time, bool) {
	for _, layout := range picDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
