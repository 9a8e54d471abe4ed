package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrilink/farm-market/internal/api/metrics"
	"github.com/agrilink/farm-market/internal/core/domain"
	"github.com/agrilink/farm-market/internal/core/ports"
)

// CropInfoCache abstracts the read-through cache (Redis) in front of the
// crop reference collection. Cache failures are never fatal; the service
// falls back to the repository.
type CropInfoCache interface {
	Get(ctx context.Context, id string) (*domain.CropInfo, bool, error)
	Set(ctx context.Context, info *domain.CropInfo) error
	GetList(ctx context.Context) ([]*domain.CropInfo, bool, error)
	SetList(ctx context.Context, infos []*domain.CropInfo) error
	// Invalidate drops the entry for id and the list key.
	Invalidate(ctx context.Context, id string) error
}

// CropInfoService implements reference-data lookup with a read-through cache
// and admin-side curation.
type CropInfoService struct {
	repo   ports.CropInfoRepository
	cache  CropInfoCache
	logger zerolog.Logger
}

// NewCropInfoService returns a CropInfoService. cache may be nil (tests).
func NewCropInfoService(repo ports.CropInfoRepository, cache CropInfoCache, logger zerolog.Logger) *CropInfoService {
	return &CropInfoService{repo: repo, cache: cache, logger: logger}
}

func (s *CropInfoService) Create(ctx context.Context, input ports.CropInfoInput) (*domain.CropInfo, error) {
	now := time.Now().UTC()
	info, err := s.repo.Create(ctx, s.fromInput(input, now, now))
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, info.ID)
	s.logger.Info().Str("cropinfo_id", info.ID).Str("name", info.Name).Msg("crop info created")
	return info, nil
}

func (s *CropInfoService) List(ctx context.Context) ([]*domain.CropInfo, error) {
	if s.cache != nil {
		infos, hit, err := s.cache.GetList(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("crop info cache read failed")
		} else if hit {
			metrics.CropInfoCacheTotal.WithLabelValues("hit").Inc()
			return infos, nil
		}
		metrics.CropInfoCacheTotal.WithLabelValues("miss").Inc()
	}

	infos, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetList(ctx, infos); err != nil {
			s.logger.Warn().Err(err).Msg("crop info cache write failed")
		}
	}
	return infos, nil
}

func (s *CropInfoService) Get(ctx context.Context, id string) (*domain.CropInfo, error) {
	if s.cache != nil {
		info, hit, err := s.cache.Get(ctx, id)
		if err != nil {
			s.logger.Warn().Err(err).Str("cropinfo_id", id).Msg("crop info cache read failed")
		} else if hit {
			metrics.CropInfoCacheTotal.WithLabelValues("hit").Inc()
			return info, nil
		}
		metrics.CropInfoCacheTotal.WithLabelValues("miss").Inc()
	}

	info, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, info); err != nil {
			s.logger.Warn().Err(err).Str("cropinfo_id", id).Msg("crop info cache write failed")
		}
	}
	return info, nil
}

// Update replaces the mutable fields wholesale, matching the source's
// full-document update semantics for reference entries.
func (s *CropInfoService) Update(ctx context.Context, id string, input ports.CropInfoInput) (*domain.CropInfo, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	replacement := s.fromInput(input, existing.CreatedAt, time.Now().UTC())
	replacement.ID = existing.ID

	updated, err := s.repo.Update(ctx, replacement)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return updated, nil
}

func (s *CropInfoService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	s.logger.Info().Str("cropinfo_id", id).Msg("crop info deleted")
	return nil
}

func (s *CropInfoService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("cropinfo_id", id).Msg("crop info cache invalidation failed")
	}
}

func (s *CropInfoService) fromInput(input ports.CropInfoInput, createdAt, updatedAt time.Time) *domain.CropInfo {
	return &domain.CropInfo{
		Name:             input.Name,
		ScientificName:   input.ScientificName,
		Season:           input.Season,
		TemperatureRange: input.TemperatureRange,
		RainfallRange:    input.RainfallRange,
		SoilType:         input.SoilType,
		SowingTime:       input.SowingTime,
		HarvestTime:      input.HarvestTime,
		Duration:         input.Duration,
		ImgURL:           input.ImgURL,
		Pesticides:       input.Pesticides,
		Fertilizers:      input.Fertilizers,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}
