package handlers

import (
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mokshlabs/moksh-api/internal/store"
)

const (
	maxUploadFiles = 10
	maxUploadSize  = 10 << 20 // 10MB per file
)

var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// validateUploadBatch checks the whole batch before anything is stored:
// either every file passes, or the request fails with nothing saved.
func validateUploadBatch(files []*multipart.FileHeader) error {
	if len(files) == 0 {
		return fmt.Errorf("No files uploaded")
	}
	if len(files) > maxUploadFiles {
		return fmt.Errorf("Too many files. Max %d per request", maxUploadFiles)
	}
	for _, file := range files {
		mimeType := file.Header.Get("Content-Type")
		if !allowedMimeTypes[mimeType] {
			return fmt.Errorf("Invalid file type: %s", mimeType)
		}
		if file.Size > maxUploadSize {
			return fmt.Errorf("File too large. Max %dMB per file", maxUploadSize>>20)
		}
	}
	return nil
}

func (h *Handlers) ListMedia(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	items, total, err := h.Media.ListMedia(page, limit)
	if err != nil {
		h.respondStoreError(c, err, "")
		return
	}

	page, limit = store.NormalizePageLimit(page, limit)
	respondData(c, http.StatusOK, gin.H{
		"items": items,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// UploadMedia accepts up to 10 image files in one multipart request.
func (h *Handlers) UploadMedia(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid multipart form", "UPLOAD_ERROR")
		return
	}
	files := form.File["files"]

	if err := validateUploadBatch(files); err != nil {
		respondError(c, http.StatusBadRequest, err.Error(), "UPLOAD_ERROR")
		return
	}

	adminID := c.GetString("adminID")
	results := []gin.H{}
	for _, file := range files {
		src, err := file.Open()
		if err != nil {
			h.respondStoreError(c, err, "")
			return
		}

		saved, err := h.Storage.Save(c.Request.Context(), file.Filename, file.Header.Get("Content-Type"), src, file.Size)
		src.Close()
		if err != nil {
			h.respondStoreError(c, err, "")
			return
		}

		params := store.CreateMediaParams{
			URL:          saved.URL,
			Filename:     file.Filename,
			MimeType:     file.Header.Get("Content-Type"),
			Size:         file.Size,
			UploadedByID: adminID,
		}
		if saved.Key != "" {
			key := saved.Key
			params.PublicID = &key
		}

		media, err := h.Media.CreateMedia(params)
		if err != nil {
			h.respondStoreError(c, err, "")
			return
		}
		results = append(results, gin.H{"id": media.ID, "url": media.URL, "publicId": media.PublicID})
	}

	respondData(c, http.StatusCreated, results)
}

func (h *Handlers) DeleteMedia(c *gin.Context) {
	media, err := h.Media.GetMedia(c.Param("id"))
	if err != nil {
		h.respondStoreError(c, err, "Media not found")
		return
	}

	if err := h.Media.DeleteMedia(media.ID); err != nil {
		h.respondStoreError(c, err, "Media not found")
		return
	}

	// Best effort: the row is gone either way.
	if media.PublicID != nil {
		if err := h.Storage.Remove(c.Request.Context(), *media.PublicID); err != nil {
			log.Printf("failed to remove stored object %s: %v", *media.PublicID, err)
		}
	}

	respondData(c, http.StatusOK, gin.H{"deleted": true})
}
