package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrilink/farm-market/internal/core/domain"
	"github.com/agrilink/farm-market/internal/core/ports"
	"github.com/agrilink/farm-market/internal/pkg/password"
)

// AdminService implements admin-side management of regular user accounts.
type AdminService struct {
	users    ports.IdentityRepository
	farms    ports.FarmRepository
	crops    ports.CropRepository
	hashCost int
	logger   zerolog.Logger
}

func NewAdminService(
	users ports.IdentityRepository,
	farms ports.FarmRepository,
	crops ports.CropRepository,
	hashCost int,
	logger zerolog.Logger,
) *AdminService {
	if hashCost <= 0 {
		hashCost = password.DefaultCost
	}
	return &AdminService{users: users, farms: farms, crops: crops, hashCost: hashCost, logger: logger}
}

// ListUsers returns every regular user together with their farms and crops.
func (s *AdminService) ListUsers(ctx context.Context) ([]ports.UserOverview, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	farms, err := s.farms.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	crops, err := s.crops.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	farmsByOwner := make(map[string][]*domain.Farm, len(users))
	for _, f := range farms {
		farmsByOwner[f.OwnerID] = append(farmsByOwner[f.OwnerID], f)
	}
	cropsByOwner := make(map[string][]*domain.Crop, len(users))
	for _, c := range crops {
		cropsByOwner[c.OwnerID] = append(cropsByOwner[c.OwnerID], c)
	}

	overviews := make([]ports.UserOverview, 0, len(users))
	for _, u := range users {
		overviews = append(overviews, ports.UserOverview{
			User:  u.Sanitized(),
			Farms: farmsByOwner[u.ID],
			Crops: cropsByOwner[u.ID],
		})
	}
	return overviews, nil
}

func (s *AdminService) GetUser(ctx context.Context, id string) (*domain.Identity, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

// UpdateUser applies a partial mutation to a user record. Role values are
// validated against the closed enum: the data-entry layer may send anything,
// but unrecognised roles never reach the store.
func (s *AdminService) UpdateUser(ctx context.Context, id string, update ports.UserUpdate) (*domain.Identity, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Email != nil {
		user.Email = normalizeEmail(*update.Email)
	}
	if update.Role != nil {
		if !update.Role.Valid() {
			return nil, domain.ErrInvalidRole
		}
		user.Role = *update.Role
	}
	if update.Password != nil && *update.Password != "" {
		hash, err := password.Hash(*update.Password, s.hashCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("id", updated.ID).Msg("user updated by admin")
	return updated.Sanitized(), nil
}

func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("id", id).Msg("user deleted by admin")
	return nil
}
