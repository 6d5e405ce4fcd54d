package controllers

import (
	"log"
	"net/http"
	"sort"
	"time"

	"lostfound-hub/models"
	"lostfound-hub/store"

	"github.com/gin-gonic/gin"
)

type MessageController struct {
	messages store.MessageStore
	notifier Notifier
}

func NewMessageController(messages store.MessageStore, notifier Notifier) *MessageController {
	return &MessageController{messages: messages, notifier: notifier}
}

// Create handles POST /api/messages: stamps the server timestamp, defaults
// read=false and fires off a notification email without waiting on it.
func (mc *MessageController) Create(c *gin.Context) {
	var input struct {
		SenderID       string `json:"senderId" binding:"required"`
		SenderName     string `json:"senderName"`
		SenderEmail    string `json:"senderEmail"`
		RecipientID    string `json:"recipientId" binding:"required"`
		RecipientEmail string `json:"recipientEmail"`
		Subject        string `json:"subject"`
		Content        string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid message payload", err)
		return
	}

	msg := models.Message{
		SenderID:       input.SenderID,
		SenderName:     input.SenderName,
		SenderEmail:    input.SenderEmail,
		RecipientID:    input.RecipientID,
		RecipientEmail: input.RecipientEmail,
		Subject:        input.Subject,
		Content:        input.Content,
		Timestamp:      time.Now().UTC(),
		Read:           false,
	}

	created, err := mc.messages.Insert(c.Request.Context(), msg)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to send message", err)
		return
	}

	if created.RecipientEmail != "" {
		go func(m models.Message) {
			if err := mc.notifier.SendMessageNotification(m.RecipientEmail, m.SenderName, m.Subject); err != nil {
				log.Printf("message notification to %s failed: %v", m.RecipientEmail, err)
			}
		}(created)
	}

	c.JSON(http.StatusCreated, created)
}

// List handles GET /api/messages?userId=&chatWith=. With both parameters it
// returns the conversation between exactly that pair; with only userId,
// everything that user sent or received. Ascending by timestamp for chat
// display.
func (mc *MessageController) List(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		respondError(c, http.StatusBadRequest, "userId is required", nil)
		return
	}

	var (
		msgs []models.Message
		err  error
	)
	if chatWith := c.Query("chatWith"); chatWith != "" {
		msgs, err = mc.messages.Between(c.Request.Context(), userID, chatWith)
	} else {
		msgs, err = mc.messages.ForUser(c.Request.Context(), userID)
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch messages", err)
		return
	}

	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].Timestamp.Before(msgs[j].Timestamp)
	})
	c.JSON(http.StatusOK, msgs)
}

// ListAll handles GET /api/admin/messages, newest first.
func (mc *MessageController) ListAll(c *gin.Context) {
	msgs, err := mc.messages.All(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch messages", err)
		return
	}
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].Timestamp.After(msgs[j].Timestamp)
	})
	c.JSON(http.StatusOK, msgs)
}

// Delete handles DELETE /api/admin/messages/:id.
func (mc *MessageController) Delete(c *gin.Context) {
	if err := mc.messages.Delete(c.Request.Context(), c.Param("id")); err != nil {
		storeError(c, err, "Message not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}
