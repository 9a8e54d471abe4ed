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
// In-memory stub crop repository (shared with crop service tests)
// ---------------------------------------------------------------------------

type stubCropRepo struct {
	byID   map[string]*domain.Crop
	nextID int
}

func newStubCropRepo() *stubCropRepo {
	return &stubCropRepo{byID: make(map[string]*domain.Crop)}
}

func (r *stubCropRepo) Create(_ context.Context, crop *domain.Crop) (*domain.Crop, error) {
	r.nextID++
	clone := *crop
	clone.ID = fmt.Sprintf("crop-%d", r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCropRepo) FindByID(_ context.Context, id string) (*domain.Crop, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCropNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCropRepo) FindByOwner(_ context.Context, ownerID string) ([]*domain.Crop, error) {
	var out []*domain.Crop
	for _, c := range r.byID {
		if c.OwnerID == ownerID {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubCropRepo) FindAll(_ context.Context) ([]*domain.Crop, error) {
	var out []*domain.Crop
	for _, c := range r.byID {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubCropRepo) Update(_ context.Context, crop *domain.Crop) (*domain.Crop, error) {
	if _, ok := r.byID[crop.ID]; !ok {
		return nil, domain.ErrCropNotFound
	}
	clone := *crop
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCropRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrCropNotFound
	}
	delete(r.byID, id)
	return nil
}

func newAdminFixture(t *testing.T) (*AdminService, *stubIdentityRepo, *stubFarmRepo, *stubCropRepo) {
	t.Helper()
	users := newStubIdentityRepo()
	farms := newStubFarmRepo()
	crops := newStubCropRepo()
	svc := NewAdminService(users, farms, crops, 4, zerolog.Nop())
	return svc, users, farms, crops
}

func seedUser(t *testing.T, users *stubIdentityRepo, email string) *domain.Identity {
	t.Helper()
	u, err := users.Create(context.Background(), &domain.Identity{
		Name: "Asha", Email: email, PasswordHash: "hash", Role: domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func TestListUsers_GroupsOwnedRecords(t *testing.T) {
	svc, users, farms, crops := newAdminFixture(t)
	u1 := seedUser(t, users, "a@farm.test")
	u2 := seedUser(t, users, "b@farm.test")

	if _, err := farms.Create(context.Background(), &domain.Farm{Name: "Green Acres", OwnerID: u1.ID}); err != nil {
		t.Fatalf("seed farm: %v", err)
	}
	if _, err := crops.Create(context.Background(), &domain.Crop{Name: "Wheat", OwnerID: u1.ID}); err != nil {
		t.Fatalf("seed crop: %v", err)
	}

	overviews, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(overviews) != 2 {
		t.Fatalf("expected 2 overviews, got %d", len(overviews))
	}

	for _, o := range overviews {
		if o.User.PasswordHash != "" {
			t.Fatalf("overview must carry sanitized identities")
		}
		switch o.User.ID {
		case u1.ID:
			if len(o.Farms) != 1 || len(o.Crops) != 1 {
				t.Fatalf("u1 records not grouped: %d farms, %d crops", len(o.Farms), len(o.Crops))
			}
		case u2.ID:
			if len(o.Farms) != 0 || len(o.Crops) != 0 {
				t.Fatalf("u2 must have no records")
			}
		}
	}
}

func TestUpdateUser_RejectsUnknownRole(t *testing.T) {
	svc, users, _, _ := newAdminFixture(t)
	u := seedUser(t, users, "a@farm.test")

	bad := domain.Role("superuser")
	_, err := svc.UpdateUser(context.Background(), u.ID, ports.UserUpdate{Role: &bad})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if users.byID[u.ID].Role != domain.RoleUser {
		t.Fatalf("rejected role must not be stored")
	}
}

func TestUpdateUser_PromotesToAdmin(t *testing.T) {
	svc, users, _, _ := newAdminFixture(t)
	u := seedUser(t, users, "a@farm.test")

	admin := domain.RoleAdmin
	updated, err := svc.UpdateUser(context.Background(), u.ID, ports.UserUpdate{Role: &admin})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Role != domain.RoleAdmin {
		t.Fatalf("role not updated, got %q", updated.Role)
	}
}

func TestUpdateUser_PasswordRehashOnlyWhenSet(t *testing.T) {
	svc, users, _, _ := newAdminFixture(t)
	u := seedUser(t, users, "a@farm.test")
	before := users.byID[u.ID].PasswordHash

	name := "Asha R"
	if _, err := svc.UpdateUser(context.Background(), u.ID, ports.UserUpdate{Name: &name}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if users.byID[u.ID].PasswordHash != before {
		t.Fatalf("hash must be untouched without a password in the update")
	}

	pass := "new-secret"
	if _, err := svc.UpdateUser(context.Background(), u.ID, ports.UserUpdate{Password: &pass}); err != nil {
		t.Fatalf("update password: %v", err)
	}
	if users.byID[u.ID].PasswordHash == before {
		t.Fatalf("hash must change with a password in the update")
	}
}

func TestDeleteUser_NotFound(t *testing.T) {
	svc, _, _, _ := newAdminFixture(t)
	if err := svc.DeleteUser(context.Background(), "missing"); !errors.Is(err, domain.ErrIdentityNotFound) {
		t.Fatalf("expected ErrIdentityNotFound, got %v", err)
	}
}
