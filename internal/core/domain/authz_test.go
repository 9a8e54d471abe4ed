package domain

import "testing"

func TestCanAccess(t *testing.T) {
	owner := &Identity{ID: "user-1", Role: RoleUser}
	other := &Identity{ID: "user-2", Role: RoleUser}
	admin := &Identity{ID: "admin-1", Role: RoleAdmin}

	cases := []struct {
		name    string
		actor   *Identity
		ownerID string
		want    bool
	}{
		{"owner reads own record", owner, "user-1", true},
		{"other user denied", other, "user-1", false},
		{"admin bypasses ownership", admin, "user-1", true},
		{"nil actor denied", nil, "user-1", false},
		{"owner id mismatch", owner, "user-9", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanAccess(tc.actor, tc.ownerID); got != tc.want {
				t.Fatalf("CanAccess = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleUser.Valid() || !RoleAdmin.Valid() {
		t.Fatalf("known roles must be valid")
	}
	if Role("superuser").Valid() {
		t.Fatalf("unknown role must be invalid")
	}
	if Role("").Valid() {
		t.Fatalf("empty role must be invalid")
	}
}
