package main

import (
	"context"
	"log"
	"os"
	"time"

	"lostfound-hub/controllers"
	"lostfound-hub/database"
	"lostfound-hub/jobs"
	"lostfound-hub/routes"
	"lostfound-hub/storage"
	"lostfound-hub/store"
	"lostfound-hub/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file loaded:", err)
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI not set")
	}
	client, err := db.Connect(mongoURI)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer db.Disconnect(client)

	items := store.NewMongoItemStore(db.Collection(client, "items"))
	users := store.NewMongoUserStore(db.Collection(client, "users"))
	messages := store.NewMongoMessageStore(db.Collection(client, "messages"))

	mailer := utils.NewMailer(
		env("SMTP_HOST", "smtp.gmail.com"),
		env("SMTP_PORT", "587"),
		os.Getenv("EMAIL_FROM"),
		os.Getenv("EMAIL_PASS"),
	)

	baseURL := env("EXTERNAL_BASE_URL", "http://localhost:8080")
	uploadDir := ""
	var uploader storage.Uploader
	if env("STORAGE_DRIVER", "local") == "gcs" {
		gcsUploader, err := storage.NewGCS(context.Background(), os.Getenv("GCS_BUCKET"), "profile")
		if err != nil {
			log.Fatal("Failed to init GCS storage:", err)
		}
		defer gcsUploader.Close()
		uploader = gcsUploader
	} else {
		uploadDir = env("UPLOAD_DIR", "uploads")
		local, err := storage.NewLocal(uploadDir, baseURL)
		if err != nil {
			log.Fatal("Failed to init upload dir:", err)
		}
		uploader = local
	}

	handlers := &controllers.Handlers{
		Items:    controllers.NewItemController(items),
		Users:    controllers.NewUserController(users, mailer),
		Messages: controllers.NewMessageController(messages, mailer),
		Admin:    controllers.NewAdminController(items, users, messages),
		Upload:   controllers.NewUploadController(users, uploader),
	}

	r := gin.Default()
	routes.SetupRoutes(r, handlers, routes.Options{
		CORSOrigin: env("CORS_ORIGIN", "http://localhost:5173"),
		UploadDir:  uploadDir,
	})

	scheduler := cron.New()
	if err := jobs.NewCleaner(users, uploader, 24*time.Hour).Schedule(scheduler); err != nil {
		log.Fatal("Failed to schedule upload cleanup:", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	addr := ":" + env("PORT", "8080")
	log.Println("Starting server on", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
