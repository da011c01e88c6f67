/**
* Name: 			classify_handler.go
* Description: 		Snap & Sort waste classification
* Workflow: 		image (base64 JSON or multipart) -> media type sniffing -> Gemini vision
 */
package handler

import (
	"encoding/base64"
	"io"
	"net/http"
	"strings"

	"greenmason/internal/models"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Classify godoc
// @Summary      Classify waste (base64)
// @Description  Sorts the pictured item into recyclable, compostable, landfill, e-waste, hazardous or reusable.
// @Tags         Classify
// @Accept       json
// @Produce      json
// @Param        request body models.ClassificationRequest true "base64 image, optionally a data URI"
// @Success      200 {object} models.ClassificationResult
// @Failure      400 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Failure      503 {object} handler.ErrorResponse
// @Router       /api/classify [post]
func (h *Handler) Classify(c *gin.Context) {
	var req models.ClassificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	encoded := req.ImageBase64
	mimeType := req.MimeType
	if strings.HasPrefix(encoded, "data:") {
		if i := strings.Index(encoded, ","); i >= 0 {
			if mimeType == "" {
				mimeType = strings.TrimSuffix(strings.TrimPrefix(encoded[:i], "data:"), ";base64")
			}
			encoded = encoded[i+1:]
		}
	}
	image, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(image) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image_base64 is not valid base64 image data"})
		return
	}
	h.classify(c, image, mimeType)
}

// ClassifyUpload godoc
// @Summary      Classify waste (file upload)
// @Description  Same as /api/classify but takes a multipart "file" field.
// @Tags         Classify
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "photo of the item"
// @Success      200 {object} models.ClassificationResult
// @Failure      400 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Failure      503 {object} handler.ErrorResponse
// @Router       /api/classify/upload [post]
func (h *Handler) ClassifyUpload(c *gin.Context) {
	data, contentType, ok := readUpload(c, "file")
	if !ok {
		return
	}
	h.classify(c, data, contentType)
}

func (h *Handler) classify(c *gin.Context, image []byte, mimeType string) {
	mimeType = imageMediaType(image, mimeType)
	result, err := h.assistant.ClassifyWaste(c.Request.Context(), image, mimeType)
	if err != nil {
		h.aiError(c, "Classification", err)
		return
	}
	h.logger.Info("classify(): done",
		zap.String("mime", mimeType),
		zap.Int("bytes", len(image)),
		zap.String("category", result.Category))
	c.JSON(http.StatusOK, result)
}

// imageMediaType trusts a declared image/* type and sniffs anything else.
func imageMediaType(data []byte, declared string) string {
	declared = strings.TrimSpace(strings.ToLower(declared))
	if strings.HasPrefix(declared, "image/") {
		return declared
	}
	detected := mimetype.Detect(data)
	if strings.HasPrefix(detected.String(), "image/") {
		return detected.String()
	}
	return "image/jpeg"
}

// readUpload reads a multipart field fully. ok is false after an error response
// has been written.
func readUpload(c *gin.Context, field string) ([]byte, string, bool) {
	fh, err := c.FormFile(field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing " + field + " upload"})
		return nil, "", false
	}
	if fh.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Upload is too large"})
		return nil, "", false
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read upload"})
		return nil, "", false
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil || len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read upload"})
		return nil, "", false
	}
	return data, fh.Header.Get("Content-Type"), true
}
