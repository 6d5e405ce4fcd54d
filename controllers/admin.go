package controllers

import (
	"net/http"
	"sync"

	"lostfound-hub/models"
	"lostfound-hub/services"
	"lostfound-hub/store"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	items    store.ItemStore
	users    store.UserStore
	messages store.MessageStore
}

func NewAdminController(items store.ItemStore, users store.UserStore, messages store.MessageStore) *AdminController {
	return &AdminController{items: items, users: users, messages: messages}
}

// Dashboard handles GET /api/admin/dashboard. The three collections are
// fetched concurrently, then reduced in memory.
func (ac *AdminController) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		wg       sync.WaitGroup
		items    []models.Item
		users    []models.User
		messages []models.Message
		itemErr  error
		userErr  error
		msgErr   error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		items, itemErr = ac.items.List(ctx, store.ItemFilter{})
	}()
	go func() {
		defer wg.Done()
		users, userErr = ac.users.List(ctx)
	}()
	go func() {
		defer wg.Done()
		messages, msgErr = ac.messages.All(ctx)
	}()
	wg.Wait()

	for _, err := range []error{itemErr, userErr, msgErr} {
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to build dashboard", err)
			return
		}
	}

	c.JSON(http.StatusOK, services.BuildDashboard(items, users, messages))
}
