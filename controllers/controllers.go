package controllers

import (
	"errors"
	"net/http"

	"lostfound-hub/store"

	"github.com/gin-gonic/gin"
)

// Notifier sends best-effort transactional mail. Failures are logged by the
// callers and never fail the request that triggered them.
type Notifier interface {
	SendWelcome(to, name string) error
	SendMessageNotification(to, senderName, subject string) error
}

// Handlers bundles the constructed controllers for route registration.
type Handlers struct {
	Items    *ItemController
	Users    *UserController
	Messages *MessageController
	Admin    *AdminController
	Upload   *UploadController
}

func respondError(c *gin.Context, status int, msg string, err error) {
	payload := gin.H{"error": msg}
	if err != nil {
		payload["details"] = err.Error()
	}
	c.JSON(status, payload)
}

// storeError maps store failures onto 404/500 with the shared error shape.
func storeError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, store.ErrNotFound) {
		respondError(c, http.StatusNotFound, notFoundMsg, nil)
		return
	}
	respondError(c, http.StatusInternalServerError, "Internal server error", err)
}

// Test answers GET /api/test, the connectivity probe used by the frontend.
func Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Lost & Found API is running"})
}
