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
// In-memory stub farm repository
// ---------------------------------------------------------------------------

type stubFarmRepo struct {
	byID   map[string]*domain.Farm
	nextID int
}

func newStubFarmRepo() *stubFarmRepo {
	return &stubFarmRepo{byID: make(map[string]*domain.Farm)}
}

func (r *stubFarmRepo) Create(_ context.Context, farm *domain.Farm) (*domain.Farm, error) {
	r.nextID++
	clone := *farm
	clone.ID = fmt.Sprintf("farm-%d", r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubFarmRepo) FindByID(_ context.Context, id string) (*domain.Farm, error) {
	f, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrFarmNotFound
	}
	clone := *f
	return &clone, nil
}

func (r *stubFarmRepo) FindByOwner(_ context.Context, ownerID string) ([]*domain.Farm, error) {
	var out []*domain.Farm
	for _, f := range r.byID {
		if f.OwnerID == ownerID {
			clone := *f
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubFarmRepo) FindAll(_ context.Context) ([]*domain.Farm, error) {
	var out []*domain.Farm
	for _, f := range r.byID {
		clone := *f
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubFarmRepo) Update(_ context.Context, farm *domain.Farm) (*domain.Farm, error) {
	if _, ok := r.byID[farm.ID]; !ok {
		return nil, domain.ErrFarmNotFound
	}
	clone := *farm
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubFarmRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrFarmNotFound
	}
	delete(r.byID, id)
	return nil
}

var (
	farmOwner = &domain.Identity{ID: "user-1", Name: "Asha", Role: domain.RoleUser}
	otherUser = &domain.Identity{ID: "user-2", Name: "Ravi", Role: domain.RoleUser}
	adminUser = &domain.Identity{ID: "admin-1", Name: "Root", Role: domain.RoleAdmin}
)

func seedFarm(t *testing.T, svc *FarmService) *domain.Farm {
	t.Helper()
	farm, err := svc.Create(context.Background(), farmOwner, ports.FarmInput{
		Name: "Green Acres", Location: "Pune", AreaSize: 4.5, CropType: "wheat",
	})
	if err != nil {
		t.Fatalf("seed farm: %v", err)
	}
	return farm
}

func TestFarmCreate_OwnerFromActor(t *testing.T) {
	svc := NewFarmService(newStubFarmRepo(), zerolog.Nop())
	farm := seedFarm(t, svc)

	if farm.OwnerID != farmOwner.ID {
		t.Fatalf("owner must come from the actor, got %q", farm.OwnerID)
	}
	if farm.OwnerName != farmOwner.Name {
		t.Fatalf("owner name not recorded")
	}
}

func TestFarmGet_OwnershipMatrix(t *testing.T) {
	svc := NewFarmService(newStubFarmRepo(), zerolog.Nop())
	farm := seedFarm(t, svc)

	cases := []struct {
		name    string
		actor   *domain.Identity
		wantErr error
	}{
		{"owner allowed", farmOwner, nil},
		{"admin allowed", adminUser, nil},
		{"other user forbidden", otherUser, domain.ErrForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Get(context.Background(), tc.actor, farm.ID)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestFarmListByOwner_ForbiddenForOthers(t *testing.T) {
	svc := NewFarmService(newStubFarmRepo(), zerolog.Nop())
	seedFarm(t, svc)

	if _, err := svc.ListByOwner(context.Background(), otherUser, farmOwner.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	farms, err := svc.ListByOwner(context.Background(), adminUser, farmOwner.ID)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(farms) != 1 {
		t.Fatalf("expected 1 farm, got %d", len(farms))
	}
}

func TestFarmUpdate_PartialAndForbidden(t *testing.T) {
	repo := newStubFarmRepo()
	svc := NewFarmService(repo, zerolog.Nop())
	farm := seedFarm(t, svc)

	name := "Greener Acres"
	updated, err := svc.Update(context.Background(), farmOwner, farm.ID, ports.FarmUpdate{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Greener Acres" {
		t.Fatalf("name not updated")
	}
	if updated.Location != "Pune" {
		t.Fatalf("untouched field must survive a partial update")
	}

	if _, err := svc.Update(context.Background(), otherUser, farm.ID, ports.FarmUpdate{Name: &name}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestFarmDelete(t *testing.T) {
	repo := newStubFarmRepo()
	svc := NewFarmService(repo, zerolog.Nop())
	farm := seedFarm(t, svc)

	if err := svc.Delete(context.Background(), otherUser, farm.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), adminUser, farm.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), adminUser, farm.ID); !errors.Is(err, domain.ErrFarmNotFound) {
		t.Fatalf("expected ErrFarmNotFound, got %v", err)
	}
}

func TestFarmGet_NotFound(t *testing.T) {
	svc := NewFarmService(newStubFarmRepo(), zerolog.Nop())
	if _, err := svc.Get(context.Background(), adminUser, "missing"); !errors.Is(err, domain.ErrFarmNotFound) {
		t.Fatalf("expected ErrFarmNotFound, got %v", err)
	}
}
