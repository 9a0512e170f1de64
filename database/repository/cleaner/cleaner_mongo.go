// File: database/repository/cleaner/cleaner_mongo.go
package cleanerRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"cyfairmaids/database"
	"cyfairmaids/models"
)

// CleanerRepository manages cleaning staff records.
type CleanerRepository interface {
	Create(ctx context.Context, cleaner *models.Cleaner) error
	GetAll(ctx context.Context) ([]models.Cleaner, error)
	Delete(ctx context.Context, id string) error
	CountActive(ctx context.Context) (int64, error)
}

type mongoCleanerRepo struct {
	coll *mongo.Collection
}

// NewMongoCleanerRepo returns a CleanerRepository backed by the "cleaners"
// collection.
func NewMongoCleanerRepo() CleanerRepository {
	return &mongoCleanerRepo{coll: database.Collection("cleaners")}
}

func (r *mongoCleanerRepo) Create(ctx context.Context, cleaner *models.Cleaner) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if cleaner.ID == "" {
		cleaner.ID = uuid.New().String()
	}
	if cleaner.CreatedAt.IsZero() {
		cleaner.CreatedAt = time.Now().UTC()
	}
	_, err := r.coll.InsertOne(ctx, cleaner)
	return err
}

func (r *mongoCleanerRepo) GetAll(ctx context.Context) ([]models.Cleaner, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var cleaners []models.Cleaner
	if err := cursor.All(ctx, &cleaners); err != nil {
		return nil, err
	}
	return cleaners, nil
}

func (r *mongoCleanerRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoCleanerRepo) CountActive(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{"is_active": true})
}
