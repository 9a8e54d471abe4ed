package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/agrilink/farm-market/internal/core/domain"
	"github.com/agrilink/farm-market/internal/core/ports"
)

type stubProductRepo struct {
	byID   map[string]*domain.Product
	nextID int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{byID: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	r.nextID++
	clone := *product
	clone.ID = fmt.Sprintf("product-%d", r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) FindAll(_ context.Context) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, p := range r.byID {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if _, ok := r.byID[product.ID]; !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *product
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.byID, id)
	return nil
}

func TestProductCreate_Defaults(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), zerolog.Nop())

	product, err := svc.Create(context.Background(), ports.ProductInput{
		Name: "Organic Tomatoes", Category: "vegetables", Price: 150,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !product.InStock {
		t.Fatalf("new products must start in stock")
	}
	if product.ImgURL != domain.DefaultProductImage {
		t.Fatalf("missing image must fall back to the placeholder")
	}
}

func TestProductUpdate_Partial(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), zerolog.Nop())
	product, err := svc.Create(context.Background(), ports.ProductInput{
		Name: "Organic Tomatoes", Category: "vegetables", Price: 150,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	outOfStock := false
	updated, err := svc.Update(context.Background(), product.ID, ports.ProductUpdate{InStock: &outOfStock})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.InStock {
		t.Fatalf("stock flag not updated")
	}
	if updated.Price != 150 {
		t.Fatalf("untouched field must survive a partial update")
	}
}

func TestProductGet_NotFound(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), zerolog.Nop())
	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
