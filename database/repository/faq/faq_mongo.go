// File: database/repository/faq/faq_mongo.go
package faqRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"cyfairmaids/database"
	"cyfairmaids/models"
)

// FAQRepository manages FAQ entries.
type FAQRepository interface {
	Create(ctx context.Context, faq *models.FAQ) error
	GetAll(ctx context.Context) ([]models.FAQ, error)
	Delete(ctx context.Context, id string) error
}

type mongoFAQRepo struct {
	coll *mongo.Collection
}

// NewMongoFAQRepo returns a FAQRepository backed by the "faqs" collection.
func NewMongoFAQRepo() FAQRepository {
	return &mongoFAQRepo{coll: database.Collection("faqs")}
}

func (r *mongoFAQRepo) Create(ctx context.Context, faq *models.FAQ) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if faq.ID == "" {
		faq.ID = uuid.New().String()
	}
	if faq.CreatedAt.IsZero() {
		faq.CreatedAt = time.Now().UTC()
	}
	_, err := r.coll.InsertOne(ctx, faq)
	return err
}

func (r *mongoFAQRepo) GetAll(ctx context.Context) ([]models.FAQ, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var faqs []models.FAQ
	if err := cursor.All(ctx, &faqs); err != nil {
		return nil, err
	}
	return faqs, nil
}

func (r *mongoFAQRepo) Delete(ctx context.Context, id string) error {
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
