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

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubCropInfoRepo struct {
	byID   map[string]*domain.CropInfo
	nextID int
	reads  int
}

func newStubCropInfoRepo() *stubCropInfoRepo {
	return &stubCropInfoRepo{byID: make(map[string]*domain.CropInfo)}
}

func (r *stubCropInfoRepo) Create(_ context.Context, info *domain.CropInfo) (*domain.CropInfo, error) {
	for _, existing := range r.byID {
		if existing.Name == info.Name {
			return nil, domain.ErrCropInfoExists
		}
	}
	r.nextID++
	clone := *info
	clone.ID = fmt.Sprintf("info-%d", r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCropInfoRepo) FindByID(_ context.Context, id string) (*domain.CropInfo, error) {
	r.reads++
	i, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCropInfoNotFound
	}
	clone := *i
	return &clone, nil
}

func (r *stubCropInfoRepo) FindAll(_ context.Context) ([]*domain.CropInfo, error) {
	r.reads++
	var out []*domain.CropInfo
	for _, i := range r.byID {
		clone := *i
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubCropInfoRepo) Update(_ context.Context, info *domain.CropInfo) (*domain.CropInfo, error) {
	if _, ok := r.byID[info.ID]; !ok {
		return nil, domain.ErrCropInfoNotFound
	}
	clone := *info
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCropInfoRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrCropInfoNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubCropInfoCache struct {
	entries map[string]*domain.CropInfo
	list    []*domain.CropInfo
	hasList bool
}

func newStubCropInfoCache() *stubCropInfoCache {
	return &stubCropInfoCache{entries: make(map[string]*domain.CropInfo)}
}

func (c *stubCropInfoCache) Get(_ context.Context, id string) (*domain.CropInfo, bool, error) {
	i, ok := c.entries[id]
	return i, ok, nil
}

func (c *stubCropInfoCache) Set(_ context.Context, info *domain.CropInfo) error {
	c.entries[info.ID] = info
	return nil
}

func (c *stubCropInfoCache) GetList(_ context.Context) ([]*domain.CropInfo, bool, error) {
	return c.list, c.hasList, nil
}

func (c *stubCropInfoCache) SetList(_ context.Context, infos []*domain.CropInfo) error {
	c.list = infos
	c.hasList = true
	return nil
}

func (c *stubCropInfoCache) Invalidate(_ context.Context, id string) error {
	delete(c.entries, id)
	c.list = nil
	c.hasList = false
	return nil
}

func cropInfoInput(name string) ports.CropInfoInput {
	return ports.CropInfoInput{Name: name, Season: "rabi", SoilType: "loamy"}
}

// ---------------------------------------------------------------------------
// Read-through behaviour
// ---------------------------------------------------------------------------

func TestCropInfoGet_PopulatesAndHitsCache(t *testing.T) {
	repo := newStubCropInfoRepo()
	cache := newStubCropInfoCache()
	svc := NewCropInfoService(repo, cache, zerolog.Nop())

	created, err := svc.Create(context.Background(), cropInfoInput("Wheat"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Get(context.Background(), created.ID); err != nil {
		t.Fatalf("first get: %v", err)
	}
	readsAfterMiss := repo.reads

	if _, err := svc.Get(context.Background(), created.ID); err != nil {
		t.Fatalf("second get: %v", err)
	}
	if repo.reads != readsAfterMiss {
		t.Fatalf("second get must be served from the cache")
	}
}

func TestCropInfoMutation_InvalidatesCache(t *testing.T) {
	repo := newStubCropInfoRepo()
	cache := newStubCropInfoCache()
	svc := NewCropInfoService(repo, cache, zerolog.Nop())

	created, err := svc.Create(context.Background(), cropInfoInput("Wheat"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if !cache.hasList {
		t.Fatalf("list must be cached after a read")
	}

	if _, err := svc.Update(context.Background(), created.ID, cropInfoInput("Winter Wheat")); err != nil {
		t.Fatalf("update: %v", err)
	}
	if cache.hasList {
		t.Fatalf("update must drop the cached list")
	}
	if _, ok := cache.entries[created.ID]; ok {
		t.Fatalf("update must drop the cached entry")
	}
}

func TestCropInfo_NilCache(t *testing.T) {
	svc := NewCropInfoService(newStubCropInfoRepo(), nil, zerolog.Nop())
	created, err := svc.Create(context.Background(), cropInfoInput("Wheat"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); err != nil {
		t.Fatalf("get without cache: %v", err)
	}
}

func TestCropInfoCreate_DuplicateName(t *testing.T) {
	svc := NewCropInfoService(newStubCropInfoRepo(), nil, zerolog.Nop())
	if _, err := svc.Create(context.Background(), cropInfoInput("Wheat")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(context.Background(), cropInfoInput("Wheat")); !errors.Is(err, domain.ErrCropInfoExists) {
		t.Fatalf("expected ErrCropInfoExists, got %v", err)
	}
}

func TestCropInfoUpdate_KeepsCreatedAt(t *testing.T) {
	repo := newStubCropInfoRepo()
	svc := NewCropInfoService(repo, nil, zerolog.Nop())
	created, err := svc.Create(context.Background(), cropInfoInput("Wheat"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, cropInfoInput("Winter Wheat"))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("full replacement must preserve the creation time")
	}
	if updated.Name != "Winter Wheat" {
		t.Fatalf("name not replaced")
	}
}
