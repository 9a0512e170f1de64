package models

import "time"

// Customer is a booking contact. Guest customers have no password hash and
// are created on the fly at submission time.
type Customer struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	FirstName    string    `bson:"first_name" json:"first_name"`
	LastName     string    `bson:"last_name" json:"last_name"`
	Phone        string    `bson:"phone" json:"phone"`
	Address      string    `bson:"address" json:"address"`
	City         string    `bson:"city" json:"city"`
	State        string    `bson:"state" json:"state"`
	ZipCode      string    `bson:"zip_code" json:"zip_code"`
	IsGuest      bool      `bson:"is_guest" json:"is_guest"`
	PasswordHash string    `bson:"password_hash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// CustomerInput is the snake_case contact block of a booking submission.
type CustomerInput struct {
	Email     string `json:"email" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	IsGuest   bool   `json:"is_guest"`
}

// RegisterInput is the payload for account creation.
type RegisterInput struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone"`
}

// LoginInput is the payload for customer and admin sign-in.
type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
