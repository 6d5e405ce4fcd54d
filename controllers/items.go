package controllers

import (
	"net/http"

	"lostfound-hub/models"
	"lostfound-hub/services"
	"lostfound-hub/store"

	"github.com/gin-gonic/gin"
)

type ItemController struct {
	items store.ItemStore
}

func NewItemController(items store.ItemStore) *ItemController {
	return &ItemController{items: items}
}

// List handles GET /api/items with optional type/reportUserId equality
// filters.
func (ic *ItemController) List(c *gin.Context) {
	filter := store.ItemFilter{
		Type:         c.Query("type"),
		ReportUserID: c.Query("reportUserId"),
	}
	items, err := ic.items.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch items", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Create handles POST /api/items. Unknown body fields are stored verbatim;
// dateLostFound is parsed into a timestamp.
func (ic *ItemController) Create(c *gin.Context) {
	var item models.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid item payload", err)
		return
	}

	created, err := ic.items.Create(c.Request.Context(), item)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create item", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/items/:id, merging the given fields into the
// existing document.
func (ic *ItemController) Update(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid item payload", err)
		return
	}
	delete(fields, "id")
	if s, ok := fields["dateLostFound"].(string); ok && s != "" {
		t, err := models.ParseItemDate(s)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid dateLostFound", err)
			return
		}
		fields["dateLostFound"] = t
	}

	updated, err := ic.items.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		storeError(c, err, "Item not found")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Search handles GET /api/items/search?query=&type=. Type is mandatory;
// the query is a case-insensitive substring match over name, description
// and location.
func (ic *ItemController) Search(c *gin.Context) {
	itemType := c.Query("type")
	if itemType == "" {
		respondError(c, http.StatusBadRequest, "type is required", nil)
		return
	}

	items, err := ic.items.List(c.Request.Context(), store.ItemFilter{Type: itemType})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to search items", err)
		return
	}
	c.JSON(http.StatusOK, services.MatchItems(items, c.Query("query")))
}

// Delete handles DELETE /api/admin/items/:id.
func (ic *ItemController) Delete(c *gin.Context) {
	if err := ic.items.Delete(c.Request.Context(), c.Param("id")); err != nil {
		storeError(c, err, "Item not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}
