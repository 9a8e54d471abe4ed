package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrilink/farm-market/internal/core/domain"
	"github.com/agrilink/farm-market/internal/core/ports"
)

func seedCrop(t *testing.T, svc *CropService) *domain.Crop {
	t.Helper()
	crop, err := svc.Create(context.Background(), farmOwner, ports.CropInput{
		Name:                 "Wheat",
		Variety:              "Durum",
		Quantity:             120,
		PlantedDate:          time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
		EstimatedHarvestDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("seed crop: %v", err)
	}
	return crop
}

func TestCropCreate_OwnerFromActor(t *testing.T) {
	svc := NewCropService(newStubCropRepo(), zerolog.Nop())
	crop := seedCrop(t, svc)
	if crop.OwnerID != farmOwner.ID {
		t.Fatalf("owner must come from the actor, got %q", crop.OwnerID)
	}
}

func TestCropGet_OwnershipMatrix(t *testing.T) {
	svc := NewCropService(newStubCropRepo(), zerolog.Nop())
	crop := seedCrop(t, svc)

	if _, err := svc.Get(context.Background(), farmOwner, crop.ID); err != nil {
		t.Fatalf("owner get: %v", err)
	}
	if _, err := svc.Get(context.Background(), adminUser, crop.ID); err != nil {
		t.Fatalf("admin get: %v", err)
	}
	if _, err := svc.Get(context.Background(), otherUser, crop.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

// Moving the planted date past the harvest date must fail even when only one
// of the two dates is part of the update.
func TestCropUpdate_DateOrderRechecked(t *testing.T) {
	svc := NewCropService(newStubCropRepo(), zerolog.Nop())
	crop := seedCrop(t, svc)

	lateSowing := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.Update(context.Background(), farmOwner, crop.ID, ports.CropUpdate{PlantedDate: &lateSowing})
	if !errors.Is(err, domain.ErrInvalidCropDates) {
		t.Fatalf("expected ErrInvalidCropDates, got %v", err)
	}

	earlierSowing := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Update(context.Background(), farmOwner, crop.ID, ports.CropUpdate{PlantedDate: &earlierSowing})
	if err != nil {
		t.Fatalf("valid update: %v", err)
	}
	if !updated.PlantedDate.Equal(earlierSowing) {
		t.Fatalf("planted date not updated")
	}
}

func TestCropDelete_Forbidden(t *testing.T) {
	svc := NewCropService(newStubCropRepo(), zerolog.Nop())
	crop := seedCrop(t, svc)

	if err := svc.Delete(context.Background(), otherUser, crop.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), farmOwner, crop.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
}
