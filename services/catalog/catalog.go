// File: services/catalog/catalog.go
package catalog

import (
	"context"
	"errors"
	"time"

	catalogRepo "cyfairmaids/database/repository/catalog"
	"cyfairmaids/models"
)

// ErrInvalidServiceType is returned for a category outside the known set.
var ErrInvalidServiceType = errors.New("invalid service type")

var serviceTypes = []string{
	models.ServiceTypeStandard,
	models.ServiceTypeDeep,
	models.ServiceTypeMoveIn,
	models.ServiceTypeMoveOut,
	models.ServiceTypePostConstruction,
	models.ServiceTypeALaCarte,
}

// CatalogService exposes the cleaning-service catalog.
type CatalogService interface {
	GetByID(ctx context.Context, id string) (*models.Service, error)
	ListAll(ctx context.Context) ([]models.Service, error)
	ListStandard(ctx context.Context) ([]models.Service, error)
	ListALaCarte(ctx context.Context) ([]models.Service, error)
	Create(ctx context.Context, input *models.ServiceCreate) (*models.Service, error)
	Delete(ctx context.Context, id string) error
}

// DefaultCatalogService is the standard implementation over the service
// repository.
type DefaultCatalogService struct {
	Repo catalogRepo.ServiceRepository
}

// NewDefaultCatalogService wires a catalog service from its repository.
func NewDefaultCatalogService(repo catalogRepo.ServiceRepository) *DefaultCatalogService {
	return &DefaultCatalogService{Repo: repo}
}

func (s *DefaultCatalogService) GetByID(ctx context.Context, id string) (*models.Service, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultCatalogService) ListAll(ctx context.Context) ([]models.Service, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultCatalogService) ListStandard(ctx context.Context) ([]models.Service, error) {
	return s.Repo.GetStandard(ctx)
}

func (s *DefaultCatalogService) ListALaCarte(ctx context.Context) ([]models.Service, error) {
	return s.Repo.GetALaCarte(ctx)
}

// Create adds a catalog entry. A-la-carte flags are kept consistent with the
// declared type.
func (s *DefaultCatalogService) Create(ctx context.Context, input *models.ServiceCreate) (*models.Service, error) {
	valid := false
	for _, t := range serviceTypes {
		if t == input.Type {
			valid = true
			break
		}
	}
	if !valid {
		return nil, ErrInvalidServiceType
	}

	svc := &models.Service{
		Name:          input.Name,
		Type:          input.Type,
		Description:   input.Description,
		BasePrice:     input.BasePrice,
		IsALaCarte:    input.IsALaCarte || input.Type == models.ServiceTypeALaCarte,
		ALaCartePrice: input.ALaCartePrice,
		DurationHours: input.DurationHours,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *DefaultCatalogService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
