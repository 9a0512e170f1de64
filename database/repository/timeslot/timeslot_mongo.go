// File: database/repository/timeslot/timeslot_mongo.go
package timeslotRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cyfairmaids/database"
	"cyfairmaids/models"
)

type mongoTimeSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoTimeSlotRepo returns a TimeSlotRepository backed by the
// "time_slots" collection.
func NewMongoTimeSlotRepo() TimeSlotRepository {
	return &mongoTimeSlotRepo{coll: database.Collection("time_slots")}
}

func (r *mongoTimeSlotRepo) CreateMany(ctx context.Context, slots []models.TimeSlot) error {
	if len(slots) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	docs := make([]interface{}, len(slots))
	for i, slot := range slots {
		if slot.ID == "" {
			slot.ID = uuid.New().String()
		}
		if slot.CreatedAt.IsZero() {
			slot.CreatedAt = time.Now().UTC()
		}
		docs[i] = slot
	}
	_, err := r.coll.InsertMany(ctx, docs)
	return err
}

func (r *mongoTimeSlotRepo) GetAvailableByDate(ctx context.Context, date string) ([]models.TimeSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"date": date, "is_available": true}
	opts := options.Find().SetSort(bson.M{"start_time": 1})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var slots []models.TimeSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// AvailableDates returns the sorted distinct dates that still have at least
// one open slot.
func (r *mongoTimeSlotRepo) AvailableDates(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"is_available": true}}},
		{{Key: "$group", Value: bson.M{"_id": "$date"}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Date string `bson:"_id"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	dates := make([]string, len(rows))
	for i, row := range rows {
		dates[i] = row.Date
	}
	return dates, nil
}

func (r *mongoTimeSlotRepo) MarkUnavailable(ctx context.Context, date, startTime string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"date": date, "start_time": startTime}
	_, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"is_available": false}})
	return err
}

// LatestDate returns the most distant date with any slot, or the empty
// string when the collection is empty.
func (r *mongoTimeSlotRepo) LatestDate(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.M{"date": -1})
	var slot models.TimeSlot
	err := r.coll.FindOne(ctx, bson.M{}, opts).Decode(&slot)
	if err == mongo.ErrNoDocuments {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return slot.Date, nil
}

func (r *mongoTimeSlotRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{})
}
