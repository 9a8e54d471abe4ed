package password

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/agrilink/farm-market/internal/core/domain"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("s3cret-pass", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatalf("hash must not equal plaintext")
	}

	ok, err := Verify("s3cret-pass", hash)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Fatalf("expected match")
	}
}

func TestVerify_Mismatch(t *testing.T) {
	hash, err := Hash("right-password", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	ok, err := Verify("wrong-password", hash)
	if err != nil {
		t.Fatalf("mismatch must not be an error, got %v", err)
	}
	if ok {
		t.Fatalf("expected no match")
	}
}

func TestVerify_CorruptHash(t *testing.T) {
	ok, err := Verify("whatever", "not-a-bcrypt-hash")
	if ok {
		t.Fatalf("corrupt hash must never match")
	}
	if !errors.Is(err, domain.ErrCorruptCredential) {
		t.Fatalf("expected ErrCorruptCredential, got %v", err)
	}
}

func TestHash_InvalidCostFallsBack(t *testing.T) {
	hash, err := Hash("pass", 99)
	if err != nil {
		t.Fatalf("hash with out-of-range cost: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("cost: %v", err)
	}
	if cost != DefaultCost {
		t.Fatalf("expected fallback cost %d, got %d", DefaultCost, cost)
	}
}
