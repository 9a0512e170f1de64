package models

import "time"

// Service categories offered by the company.
const (
	ServiceTypeStandard         = "standard"
	ServiceTypeDeep             = "deep"
	ServiceTypeMoveIn           = "move_in"
	ServiceTypeMoveOut          = "move_out"
	ServiceTypePostConstruction = "post_construction"
	ServiceTypeALaCarte         = "a_la_carte"
)

// Service is a catalog entry. Standard services are included in the base
// package; a-la-carte services carry their own unit price.
type Service struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Type          string    `bson:"type" json:"type"`
	Description   string    `bson:"description" json:"description"`
	BasePrice     float64   `bson:"base_price" json:"base_price"`
	IsALaCarte    bool      `bson:"is_a_la_carte" json:"is_a_la_carte"`
	ALaCartePrice float64   `bson:"a_la_carte_price,omitempty" json:"a_la_carte_price,omitempty"`
	DurationHours int       `bson:"duration_hours,omitempty" json:"duration_hours,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// ServiceCreate is the admin payload for adding a catalog entry.
type ServiceCreate struct {
	Name          string  `json:"name" binding:"required"`
	Type          string  `json:"type" binding:"required"`
	Description   string  `json:"description"`
	BasePrice     float64 `json:"base_price"`
	IsALaCarte    bool    `json:"is_a_la_carte"`
	ALaCartePrice float64 `json:"a_la_carte_price"`
	DurationHours int     `json:"duration_hours"`
}
