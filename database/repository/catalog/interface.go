package catalogRepo

import (
	"context"

	"cyfairmaids/models"
)

// ServiceRepository manages the cleaning-service catalog.
type ServiceRepository interface {
	Create(ctx context.Context, svc *models.Service) error
	GetByID(ctx context.Context, id string) (*models.Service, error)
	GetAll(ctx context.Context) ([]models.Service, error)
	GetStandard(ctx context.Context) ([]models.Service, error)
	GetALaCarte(ctx context.Context) ([]models.Service, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
