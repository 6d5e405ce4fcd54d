package controllers

import (
	"log"
	"net/http"
	"time"

	"lostfound-hub/models"
	"lostfound-hub/services"
	"lostfound-hub/store"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users    store.UserStore
	notifier Notifier
}

func NewUserController(users store.UserStore, notifier Notifier) *UserController {
	return &UserController{users: users, notifier: notifier}
}

// List handles GET /api/users.
func (uc *UserController) List(c *gin.Context) {
	users, err := uc.users.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get handles GET /api/users/:id.
func (uc *UserController) Get(c *gin.Context) {
	user, err := uc.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

// Search handles GET /api/users/search?query=, a case-insensitive
// substring match over name, email and UWE id.
func (uc *UserController) Search(c *gin.Context) {
	users, err := uc.users.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to search users", err)
		return
	}
	c.JSON(http.StatusOK, services.MatchUsers(users, c.Query("query")))
}

// Create handles POST /api/users: fills defaults, stores the user and
// fires off a welcome email without waiting on it.
func (uc *UserController) Create(c *gin.Context) {
	var input struct {
		Name        string `json:"name" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		UweID       string `json:"uweId" binding:"required"`
		PhoneNumber string `json:"phoneNumber"`
		Avatar      string `json:"avatar"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid user payload", err)
		return
	}

	now := time.Now().UTC()
	user := models.User{
		Name:        input.Name,
		Email:       input.Email,
		UweID:       input.UweID,
		PhoneNumber: input.PhoneNumber,
		Avatar:      input.Avatar,
		Role:        models.RoleUser,
		IsActive:    true,
		CreatedAt:   now,
		LastLogin:   now,
	}

	created, err := uc.users.Create(c.Request.Context(), user)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create user", err)
		return
	}

	// Best-effort: a failed welcome email never fails the signup.
	go func(to, name string) {
		if err := uc.notifier.SendWelcome(to, name); err != nil {
			log.Printf("welcome email to %s failed: %v", to, err)
		}
	}(created.Email, created.Name)

	c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/users/:id with a partial field merge.
func (uc *UserController) Update(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid user payload", err)
		return
	}
	delete(fields, "id")

	updated, err := uc.users.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		storeError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/admin/users/:id.
func (uc *UserController) Delete(c *gin.Context) {
	if err := uc.users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		storeError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// SetRole handles PUT /api/admin/users/:id/role.
func (uc *UserController) SetRole(c *gin.Context) {
	var input struct {
		Role string `json:"role" binding:"required,oneof=user admin"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid role payload", err)
		return
	}

	updated, err := uc.users.Update(c.Request.Context(), c.Param("id"), map[string]interface{}{"role": input.Role})
	if err != nil {
		storeError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SetStatus handles PUT /api/admin/users/:id/status.
func (uc *UserController) SetStatus(c *gin.Context) {
	var input struct {
		IsActive *bool `json:"isActive" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid status payload", err)
		return
	}

	updated, err := uc.users.Update(c.Request.Context(), c.Param("id"), map[string]interface{}{"isActive": *input.IsActive})
	if err != nil {
		storeError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, updated)
}
