package routes

import (
	"lostfound-hub/controllers"
	"lostfound-hub/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Options carries the wiring the route table needs beyond the handlers.
type Options struct {
	CORSOrigin string
	// UploadDir is served at /uploads; empty when uploads live in GCS.
	UploadDir string
}

func SetupRoutes(r *gin.Engine, h *controllers.Handlers, opts Options) {
	r.Use(middleware.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{opts.CORSOrigin},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	if opts.UploadDir != "" {
		r.Static("/uploads", opts.UploadDir)
	}

	api := r.Group("/api")
	{
		api.GET("/test", controllers.Test)

		api.GET("/items", h.Items.List)
		api.POST("/items", h.Items.Create)
		// search before :id so it is not captured as an item id
		api.GET("/items/search", h.Items.Search)
		api.PUT("/items/:id", h.Items.Update)

		api.GET("/users", h.Users.List)
		api.POST("/users", h.Users.Create)
		api.GET("/users/search", h.Users.Search)
		api.GET("/users/:id", h.Users.Get)
		api.PUT("/users/:id", h.Users.Update)

		api.POST("/messages", h.Messages.Create)
		api.GET("/messages", h.Messages.List)

		api.POST("/upload-profile-photo", h.Upload.ProfilePhoto)

		admin := api.Group("/admin")
		{
			admin.GET("/dashboard", h.Admin.Dashboard)
			admin.DELETE("/users/:id", h.Users.Delete)
			admin.PUT("/users/:id/role", h.Users.SetRole)
			admin.PUT("/users/:id/status", h.Users.SetStatus)
			admin.DELETE("/items/:id", h.Items.Delete)
			admin.GET("/messages", h.Messages.ListAll)
			admin.DELETE("/messages/:id", h.Messages.Delete)
		}
	}
}
