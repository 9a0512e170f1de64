// File: database/repository/promo/promo_mongo.go
package promoRepo

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cyfairmaids/database"
	"cyfairmaids/models"
)

// PromoRepository manages promo codes.
type PromoRepository interface {
	Create(ctx context.Context, promo *models.PromoCode) error
	GetByCode(ctx context.Context, code string) (*models.PromoCode, error)
	GetAll(ctx context.Context) ([]models.PromoCode, error)
	Delete(ctx context.Context, id string) error
	IncrementUsage(ctx context.Context, code string) error
}

type mongoPromoRepo struct {
	coll *mongo.Collection
}

// NewMongoPromoRepo returns a PromoRepository backed by the "promo_codes"
// collection.
func NewMongoPromoRepo() PromoRepository {
	return &mongoPromoRepo{coll: database.Collection("promo_codes")}
}

func (r *mongoPromoRepo) Create(ctx context.Context, promo *models.PromoCode) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if promo.ID == "" {
		promo.ID = uuid.New().String()
	}
	promo.Code = strings.ToUpper(strings.TrimSpace(promo.Code))
	if promo.CreatedAt.IsZero() {
		promo.CreatedAt = time.Now().UTC()
	}
	_, err := r.coll.InsertOne(ctx, promo)
	return err
}

func (r *mongoPromoRepo) GetByCode(ctx context.Context, code string) (*models.PromoCode, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	code = strings.ToUpper(strings.TrimSpace(code))
	var promo models.PromoCode
	if err := r.coll.FindOne(ctx, bson.M{"code": code}).Decode(&promo); err != nil {
		return nil, err
	}
	return &promo, nil
}

func (r *mongoPromoRepo) GetAll(ctx context.Context) ([]models.PromoCode, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var promos []models.PromoCode
	if err := cursor.All(ctx, &promos); err != nil {
		return nil, err
	}
	return promos, nil
}

func (r *mongoPromoRepo) Delete(ctx context.Context, id string) error {
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

func (r *mongoPromoRepo) IncrementUsage(ctx context.Context, code string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	code = strings.ToUpper(strings.TrimSpace(code))
	_, err := r.coll.UpdateOne(ctx, bson.M{"code": code}, bson.M{"$inc": bson.M{"usage_count": 1}})
	return err
}
