package handler

import (
	"net/http"
	"strings"

	"chequesaathi/internal/middleware"
	"chequesaathi/internal/service"
	"chequesaathi/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const maxImageBytes = 10 << 20

type UploadHandler struct {
	cloud   cloudinary.Client
	cheques *service.ChequeService
	folder  string
}

// NewUploadHandler accepts a nil client; uploads then answer 503.
func NewUploadHandler(cloud cloudinary.Client, cheques *service.ChequeService, folder string) *UploadHandler {
	return &UploadHandler{cloud: cloud, cheques: cheques, folder: folder}
}

// UploadChequeImage stores a scan of the cheque and records its URL.
func (h *UploadHandler) UploadChequeImage(c *gin.Context) {
	if h.cloud == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Image uploads are not configured"})
		return
	}
	id := c.Param("id")
	if _, err := h.cheques.Get(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "file required")
		return
	}
	if file.Size > maxImageBytes {
		badRequest(c, "Image must be 10 MB or smaller")
		return
	}
	if ct := file.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		badRequest(c, "Only image files can be uploaded")
		return
	}

	f, err := file.Open()
	if err != nil {
		badRequest(c, "could not read file")
		return
	}
	defer f.Close()

	publicID := id + "_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	img, err := h.cloud.UploadImage(c.Request.Context(), f, h.folder, publicID)
	if err != nil {
		respondError(c, err)
		return
	}
	cheque, err := h.cheques.AttachImage(c.Request.Context(), middleware.GetUserID(c), id, img.URL)
	if err != nil {
		if derr := h.cloud.Delete(c.Request.Context(), img.PublicID); derr != nil {
			logrus.WithError(derr).WithField("public_id", img.PublicID).Warn("orphaned cheque image")
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Cheque image uploaded successfully",
		"url":          img.URL,
		"thumbnailUrl": img.ThumbnailURL,
		"cheque":       cheque.View(),
	})
}
