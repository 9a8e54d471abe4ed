package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrilink/farm-market/internal/core/domain"
	"github.com/agrilink/farm-market/internal/core/ports"
)

// ProductService implements catalogue management. Mutations are role-gated
// at the route; this layer holds no ownership logic because products are
// platform-owned.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, input ports.ProductInput) (*domain.Product, error) {
	imgURL := input.ImgURL
	if imgURL == "" {
		imgURL = domain.DefaultProductImage
	}
	now := time.Now().UTC()
	product, err := s.repo.Create(ctx, &domain.Product{
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		Description: input.Description,
		ImgURL:      imgURL,
		InStock:     true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("product_id", product.ID).Str("name", product.Name).Msg("product created")
	return product, nil
}

func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Update(ctx context.Context, id string, update ports.ProductUpdate) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Category != nil {
		product.Category = *update.Category
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.ImgURL != nil {
		product.ImgURL = *update.ImgURL
	}
	if update.InStock != nil {
		product.InStock = *update.InStock
	}
	product.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, product)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}
