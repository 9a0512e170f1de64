// File: database/repository/ticket/ticket_mongo.go
package ticketRepo

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

// TicketRepository manages support tickets.
type TicketRepository interface {
	Create(ctx context.Context, ticket *models.SupportTicket) error
	GetAll(ctx context.Context) ([]models.SupportTicket, error)
	UpdateStatus(ctx context.Context, id, status string) error
	CountOpen(ctx context.Context) (int64, error)
}

type mongoTicketRepo struct {
	coll *mongo.Collection
}

// NewMongoTicketRepo returns a TicketRepository backed by the "tickets"
// collection.
func NewMongoTicketRepo() TicketRepository {
	return &mongoTicketRepo{coll: database.Collection("tickets")}
}

func (r *mongoTicketRepo) Create(ctx context.Context, ticket *models.SupportTicket) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if ticket.ID == "" {
		ticket.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if ticket.CreatedAt.IsZero() {
		ticket.CreatedAt = now
	}
	ticket.UpdatedAt = now
	if ticket.Status == "" {
		ticket.Status = models.TicketStatusOpen
	}
	_, err := r.coll.InsertOne(ctx, ticket)
	return err
}

func (r *mongoTicketRepo) GetAll(ctx context.Context) ([]models.SupportTicket, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tickets []models.SupportTicket
	if err := cursor.All(ctx, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *mongoTicketRepo) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoTicketRepo) CountOpen(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{"status": models.TicketStatusOpen})
}
