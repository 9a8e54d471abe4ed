package ports

import (
	"context"

	"github.com/agrilink/farm-market/internal/core/domain"
)

// CropInfoInput carries the fields for creating or replacing a crop-info
// reference entry.
type CropInfoInput struct {
	Name             string
	ScientificName   string
	Season           string
	TemperatureRange string
	RainfallRange    string
	SoilType         string
	SowingTime       string
	HarvestTime      string
	Duration         string
	ImgURL           string
	Pesticides       []string
	Fertilizers      []string
}

// CropInfoService defines use-case operations for crop reference data.
// Reads are public; mutations are admin operations gated at the route.
type CropInfoService interface {
	Create(ctx context.Context, input CropInfoInput) (*domain.CropInfo, error)
	List(ctx context.Context) ([]*domain.CropInfo, error)
	Get(ctx context.Context, id string) (*domain.CropInfo, error)
	Update(ctx context.Context, id string, input CropInfoInput) (*domain.CropInfo, error)
	Delete(ctx context.Context, id string) error
}

// CropInfoRepository defines persistence operations for crop reference data.
type CropInfoRepository interface {
	Create(ctx context.Context, info *domain.CropInfo) (*domain.CropInfo, error)
	FindByID(ctx context.Context, id string) (*domain.CropInfo, error)
	FindAll(ctx context.Context) ([]*domain.CropInfo, error)
	Update(ctx context.Context, info *domain.CropInfo) (*domain.CropInfo, error)
	Delete(ctx context.Context, id string) error
}
