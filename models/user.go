package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Email       string             `json:"email" bson:"email"`
	UweID       string             `json:"uweId" bson:"uweId"`
	PhoneNumber string             `json:"phoneNumber" bson:"phoneNumber,omitempty"`
	Avatar      string             `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Role        string             `json:"role" bson:"role"`
	IsActive    bool               `json:"isActive" bson:"isActive"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	LastLogin   time.Time          `json:"lastLogin" bson:"lastLogin"`
}
