package domain

import "errors"

var (
	// Authentication / credentials.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrIdentityExists     = errors.New("identity with this email already exists")
	ErrIdentityNotFound   = errors.New("identity not found")
	ErrInvalidRole        = errors.New("invalid role")
	ErrCorruptCredential  = errors.New("corrupt credential record")

	// Authorization.
	ErrForbidden = errors.New("access forbidden")

	// Resources.
	ErrFarmNotFound     = errors.New("farm not found")
	ErrCropNotFound     = errors.New("crop not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrCropInfoNotFound = errors.New("crop info not found")
	ErrCropInfoExists   = errors.New("crop info with this name already exists")

	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrInvalidCropDates  = errors.New("estimated harvest date must not be before planted date")
)
