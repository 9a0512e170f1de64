// File: database/repository/customer/customer_mongo.go
package customerRepo

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"cyfairmaids/database"
	"cyfairmaids/models"
)

// CustomerRepository manages customer records.
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	GetByEmail(ctx context.Context, email string) (*models.Customer, error)
	Count(ctx context.Context) (int64, error)
}

type mongoCustomerRepo struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepo returns a CustomerRepository backed by the
// "customers" collection.
func NewMongoCustomerRepo() CustomerRepository {
	return &mongoCustomerRepo{coll: database.Collection("customers")}
}

func (r *mongoCustomerRepo) Create(ctx context.Context, customer *models.Customer) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	customer.Email = strings.ToLower(strings.TrimSpace(customer.Email))
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = time.Now().UTC()
	}
	_, err := r.coll.InsertOne(ctx, customer)
	return err
}

func (r *mongoCustomerRepo) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var customer models.Customer
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *mongoCustomerRepo) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	email = strings.ToLower(strings.TrimSpace(email))
	var customer models.Customer
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *mongoCustomerRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{})
}
