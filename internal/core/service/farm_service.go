package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrilink/farm-market/internal/core/domain"
	"github.com/agrilink/farm-market/internal/core/ports"
)

// FarmService implements farm record-keeping with ownership scoping.
type FarmService struct {
	repo   ports.FarmRepository
	logger zerolog.Logger
}

func NewFarmService(repo ports.FarmRepository, logger zerolog.Logger) *FarmService {
	return &FarmService{repo: repo, logger: logger}
}

// Create records a new farm owned by the actor.
func (s *FarmService) Create(ctx context.Context, actor *domain.Identity, input ports.FarmInput) (*domain.Farm, error) {
	now := time.Now().UTC()
	farm, err := s.repo.Create(ctx, &domain.Farm{
		Name:      input.Name,
		Location:  input.Location,
		AreaSize:  input.AreaSize,
		CropType:  input.CropType,
		OwnerID:   actor.ID,
		OwnerName: actor.Name,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("farm_id", farm.ID).Str("owner_id", actor.ID).Msg("farm created")
	return farm, nil
}

// ListAll returns every farm. The marketplace exposes this publicly.
func (s *FarmService) ListAll(ctx context.Context) ([]*domain.Farm, error) {
	return s.repo.FindAll(ctx)
}

// ListByOwner returns the farms of ownerID. Only the owner themselves or an
// admin may ask.
func (s *FarmService) ListByOwner(ctx context.Context, actor *domain.Identity, ownerID string) ([]*domain.Farm, error) {
	if !domain.CanAccess(actor, ownerID) {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByOwner(ctx, ownerID)
}

// Get returns a single farm, owner-or-admin only.
func (s *FarmService) Get(ctx context.Context, actor *domain.Identity, id string) (*domain.Farm, error) {
	farm, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccess(actor, farm.OwnerID) {
		return nil, domain.ErrForbidden
	}
	return farm, nil
}

// Update applies a partial mutation, owner-or-admin only.
func (s *FarmService) Update(ctx context.Context, actor *domain.Identity, id string, update ports.FarmUpdate) (*domain.Farm, error) {
	farm, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccess(actor, farm.OwnerID) {
		return nil, domain.ErrForbidden
	}

	if update.Name != nil {
		farm.Name = *update.Name
	}
	if update.Location != nil {
		farm.Location = *update.Location
	}
	if update.AreaSize != nil {
		farm.AreaSize = *update.AreaSize
	}
	if update.CropType != nil {
		farm.CropType = *update.CropType
	}
	farm.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, farm)
}

// Delete removes a farm, owner-or-admin only.
func (s *FarmService) Delete(ctx context.Context, actor *domain.Identity, id string) error {
	farm, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanAccess(actor, farm.OwnerID) {
		return domain.ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("farm_id", id).Str("actor_id", actor.ID).Msg("farm deleted")
	return nil
}
