// File: database/repository/pricing/pricing_mongo.go
package pricingRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cyfairmaids/database"
)

// PricingEntry is one row of the (house size, frequency) price matrix.
type PricingEntry struct {
	HouseSize string  `bson:"house_size" json:"house_size"`
	Frequency string  `bson:"frequency" json:"frequency"`
	BasePrice float64 `bson:"base_price" json:"base_price"`
}

// PricingRepository looks up base prices by house size band and frequency.
type PricingRepository interface {
	Lookup(ctx context.Context, houseSize, frequency string) (float64, error)
	Upsert(ctx context.Context, entry PricingEntry) error
	Count(ctx context.Context) (int64, error)
}

type mongoPricingRepo struct {
	coll *mongo.Collection
}

// NewMongoPricingRepo returns a PricingRepository backed by the "pricing"
// collection.
func NewMongoPricingRepo() PricingRepository {
	return &mongoPricingRepo{coll: database.Collection("pricing")}
}

func (r *mongoPricingRepo) Lookup(ctx context.Context, houseSize, frequency string) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var entry PricingEntry
	filter := bson.M{"house_size": houseSize, "frequency": frequency}
	if err := r.coll.FindOne(ctx, filter).Decode(&entry); err != nil {
		return 0, err
	}
	return entry.BasePrice, nil
}

func (r *mongoPricingRepo) Upsert(ctx context.Context, entry PricingEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"house_size": entry.HouseSize, "frequency": entry.Frequency}
	update := bson.M{"$set": bson.M{"base_price": entry.BasePrice}}
	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *mongoPricingRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{})
}
