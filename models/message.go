package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is a user-to-user note about an item. Messages are immutable once
// sent; only an admin can remove them.
type Message struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	SenderID       string             `json:"senderId" bson:"senderId"`
	SenderName     string             `json:"senderName" bson:"senderName"`
	SenderEmail    string             `json:"senderEmail" bson:"senderEmail"`
	RecipientID    string             `json:"recipientId" bson:"recipientId"`
	RecipientEmail string             `json:"recipientEmail" bson:"recipientEmail"`
	Subject        string             `json:"subject" bson:"subject"`
	Content        string             `json:"content" bson:"content"`
	Timestamp      time.Time          `json:"timestamp" bson:"timestamp"`
	Read           bool               `json:"read" bson:"read"`
}
