package store

import (
	"context"

	"lostfound-hub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoMessageStore struct {
	col *mongo.Collection
}

func NewMongoMessageStore(col *mongo.Collection) *MongoMessageStore {
	return &MongoMessageStore{col: col}
}

func (s *MongoMessageStore) Insert(ctx context.Context, m models.Message) (models.Message, error) {
	m.ID = primitive.NewObjectID()
	if _, err := s.col.InsertOne(ctx, m); err != nil {
		return models.Message{}, err
	}
	return m, nil
}

func (s *MongoMessageStore) find(ctx context.Context, filter bson.M) ([]models.Message, error) {
	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	msgs := []models.Message{}
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (s *MongoMessageStore) Between(ctx context.Context, userID, otherID string) ([]models.Message, error) {
	return s.find(ctx, bson.M{"$or": []bson.M{
		{"senderId": userID, "recipientId": otherID},
		{"senderId": otherID, "recipientId": userID},
	}})
}

func (s *MongoMessageStore) ForUser(ctx context.Context, userID string) ([]models.Message, error) {
	return s.find(ctx, bson.M{"$or": []bson.M{
		{"senderId": userID},
		{"recipientId": userID},
	}})
}

func (s *MongoMessageStore) All(ctx context.Context) ([]models.Message, error) {
	return s.find(ctx, bson.M{})
}

func (s *MongoMessageStore) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
