package ports

import (
	"context"

	"github.com/agrilink/farm-market/internal/core/domain"
)

// ProductInput carries the fields for creating a product listing.
type ProductInput struct {
	Name        string
	Category    string
	Price       float64
	Description string
	ImgURL      string
}

// ProductUpdate carries a partial product mutation. Nil fields are left untouched.
type ProductUpdate struct {
	Name        *string
	Category    *string
	Price       *float64
	Description *string
	ImgURL      *string
	InStock     *bool
}

// ProductService defines use-case operations for the product catalogue.
// Reads are public; mutations are admin operations gated at the route.
type ProductService interface {
	Create(ctx context.Context, input ProductInput) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, id string, update ProductUpdate) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindAll(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
