package store

import (
	"context"
	"errors"

	"lostfound-hub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoItemStore struct {
	col *mongo.Collection
}

func NewMongoItemStore(col *mongo.Collection) *MongoItemStore {
	return &MongoItemStore{col: col}
}

func (s *MongoItemStore) List(ctx context.Context, f ItemFilter) ([]models.Item, error) {
	filter := bson.M{}
	if f.Type != "" {
		filter["type"] = f.Type
	}
	if f.ReportUserID != "" {
		filter["reportUserId"] = f.ReportUserID
	}

	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MongoItemStore) Create(ctx context.Context, it models.Item) (models.Item, error) {
	it.ID = primitive.NewObjectID()
	if _, err := s.col.InsertOne(ctx, it); err != nil {
		return models.Item{}, err
	}
	return it, nil
}

func (s *MongoItemStore) Update(ctx context.Context, id string, fields map[string]interface{}) (models.Item, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Item{}, ErrNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Item
	err = s.col.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M(fields)}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Item{}, ErrNotFound
	}
	if err != nil {
		return models.Item{}, err
	}
	return updated, nil
}

func (s *MongoItemStore) Delete(ctx context.Context, id string) error {
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
