package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrilink/farm-market/internal/core/domain"
	"github.com/agrilink/farm-market/internal/core/ports"
)

// CropService implements crop record-keeping with ownership scoping.
type CropService struct {
	repo   ports.CropRepository
	logger zerolog.Logger
}

func NewCropService(repo ports.CropRepository, logger zerolog.Logger) *CropService {
	return &CropService{repo: repo, logger: logger}
}

func (s *CropService) Create(ctx context.Context, actor *domain.Identity, input ports.CropInput) (*domain.Crop, error) {
	now := time.Now().UTC()
	crop, err := s.repo.Create(ctx, &domain.Crop{
		Name:                 input.Name,
		Variety:              input.Variety,
		Quantity:             input.Quantity,
		PlantedDate:          input.PlantedDate,
		EstimatedHarvestDate: input.EstimatedHarvestDate,
		OwnerID:              actor.ID,
		OwnerName:            actor.Name,
		CreatedAt:            now,
		UpdatedAt:            now,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("crop_id", crop.ID).Str("owner_id", actor.ID).Msg("crop created")
	return crop, nil
}

func (s *CropService) ListByOwner(ctx context.Context, actor *domain.Identity, ownerID string) ([]*domain.Crop, error) {
	if !domain.CanAccess(actor, ownerID) {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByOwner(ctx, ownerID)
}

func (s *CropService) Get(ctx context.Context, actor *domain.Identity, id string) (*domain.Crop, error) {
	crop, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccess(actor, crop.OwnerID) {
		return nil, domain.ErrForbidden
	}
	return crop, nil
}

func (s *CropService) Update(ctx context.Context, actor *domain.Identity, id string, update ports.CropUpdate) (*domain.Crop, error) {
	crop, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccess(actor, crop.OwnerID) {
		return nil, domain.ErrForbidden
	}

	if update.Name != nil {
		crop.Name = *update.Name
	}
	if update.Variety != nil {
		crop.Variety = *update.Variety
	}
	if update.Quantity != nil {
		crop.Quantity = *update.Quantity
	}
	if update.PlantedDate != nil {
		crop.PlantedDate = *update.PlantedDate
	}
	if update.EstimatedHarvestDate != nil {
		crop.EstimatedHarvestDate = *update.EstimatedHarvestDate
	}
	// Re-check date ordering against the merged record: either date may have
	// changed independently.
	if crop.EstimatedHarvestDate.Before(crop.PlantedDate) {
		return nil, domain.ErrInvalidCropDates
	}
	crop.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, crop)
}

func (s *CropService) Delete(ctx context.Context, actor *domain.Identity, id string) error {
	crop, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanAccess(actor, crop.OwnerID) {
		return domain.ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("crop_id", id).Str("actor_id", actor.ID).Msg("crop deleted")
	return nil
}
