package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"lostfound-hub/storage"
	"lostfound-hub/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxUploadBytes caps profile photos at 5MB.
const maxUploadBytes = 5 << 20

type UploadController struct {
	users    store.UserStore
	uploader storage.Uploader
}

func NewUploadController(users store.UserStore, uploader storage.Uploader) *UploadController {
	return &UploadController{users: users, uploader: uploader}
}

// ProfilePhoto handles POST /api/upload-profile-photo: validates the
// multipart file, stores it and persists the public URL on the user's
// avatar field.
func (pc *UploadController) ProfilePhoto(c *gin.Context) {
	userID := c.PostForm("userId")
	if userID == "" {
		respondError(c, http.StatusBadRequest, "userId is required", nil)
		return
	}

	file, header, err := c.Request.FormFile("profilePhoto")
	if err != nil {
		respondError(c, http.StatusBadRequest, "No file uploaded", err)
		return
	}
	defer file.Close()

	if header.Size > maxUploadBytes {
		respondError(c, http.StatusBadRequest, "File too large (max 5MB)", nil)
		return
	}
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "Only image files are allowed", nil)
		return
	}

	name := fmt.Sprintf("profile-%d-%s%s", time.Now().UnixNano(), uuid.NewString(), photoExt(header.Filename, contentType))
	avatarURL, err := pc.uploader.Save(c.Request.Context(), name, contentType, file)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to store file", err)
		return
	}

	if _, err := pc.users.Update(c.Request.Context(), userID, map[string]interface{}{"avatar": avatarURL}); err != nil {
		storeError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "avatarUrl": avatarURL})
}

// photoExt prefers the original filename's extension, falling back to the
// declared content type.
func photoExt(filename, contentType string) string {
	if ext := filepath.Ext(filename); ext != "" {
		return ext
	}
	switch strings.ToLower(contentType) {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
