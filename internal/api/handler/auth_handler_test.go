package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/agrilink/farm-market/internal/api/middleware"
	"github.com/agrilink/farm-market/internal/core/domain"
	"github.com/agrilink/farm-market/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub auth service
// ---------------------------------------------------------------------------

type stubAuthService struct {
	registerInput ports.RegisterInput
	loginEmail    string
	loginPassword string
	profileUpdate ports.ProfileUpdate
	err           error
}

func (s *stubAuthService) RegisterUser(_ context.Context, input ports.RegisterInput) (string, *domain.Identity, error) {
	s.registerInput = input
	if s.err != nil {
		return "", nil, s.err
	}
	return "tok-user", &domain.Identity{ID: "user-1", Name: input.Name, Email: input.Email, Role: domain.RoleUser}, nil
}

func (s *stubAuthService) RegisterAdmin(_ context.Context, input ports.RegisterInput) (string, *domain.Identity, error) {
	s.registerInput = input
	if s.err != nil {
		return "", nil, s.err
	}
	return "tok-admin", &domain.Identity{ID: "admin-1", Name: input.Name, Email: input.Email, Role: domain.RoleAdmin}, nil
}

func (s *stubAuthService) LoginUser(_ context.Context, email, password string) (string, *domain.Identity, error) {
	s.loginEmail, s.loginPassword = email, password
	if s.err != nil {
		return "", nil, s.err
	}
	return "tok-user", &domain.Identity{ID: "user-1", Email: email, Role: domain.RoleUser}, nil
}

func (s *stubAuthService) LoginAdmin(_ context.Context, email, password string) (string, *domain.Identity, error) {
	s.loginEmail, s.loginPassword = email, password
	if s.err != nil {
		return "", nil, s.err
	}
	return "tok-admin", &domain.Identity{ID: "admin-1", Email: email, Role: domain.RoleAdmin}, nil
}

func (s *stubAuthService) Profile(_ context.Context, actor *domain.Identity) (*domain.Identity, error) {
	if s.err != nil {
		return nil, s.err
	}
	return actor, nil
}

func (s *stubAuthService) UpdateProfile(_ context.Context, actor *domain.Identity, update ports.ProfileUpdate) (*domain.Identity, error) {
	s.profileUpdate = update
	if s.err != nil {
		return nil, s.err
	}
	return actor, nil
}

func newRequestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// ---------------------------------------------------------------------------
// Registration
// ---------------------------------------------------------------------------

func TestRegisterUser_OK(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	c, rec := newRequestContext(t, http.MethodPost, "/api/users/register",
		`{"name":"Asha","email":"asha@farm.test","password":"secret1"}`)
	if err := h.RegisterUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["token"] != "tok-user" {
		t.Fatalf("token missing from response")
	}
	if svc.registerInput.Email != "asha@farm.test" {
		t.Fatalf("input not forwarded: %+v", svc.registerInput)
	}
}

func TestRegisterUser_ShortPassword(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, _ := newRequestContext(t, http.MethodPost, "/api/users/register",
		`{"name":"Asha","email":"asha@farm.test","password":"abc"}`)

	err := h.RegisterUser(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestRegisterUser_BadEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, _ := newRequestContext(t, http.MethodPost, "/api/users/register",
		`{"name":"Asha","email":"not-an-email","password":"secret1"}`)

	err := h.RegisterUser(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestRegisterUser_DuplicatePropagates(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrIdentityExists})
	c, _ := newRequestContext(t, http.MethodPost, "/api/users/register",
		`{"name":"Asha","email":"asha@farm.test","password":"secret1"}`)

	if err := h.RegisterUser(c); !errors.Is(err, domain.ErrIdentityExists) {
		t.Fatalf("expected ErrIdentityExists to propagate, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestLoginUser_OK(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)
	c, rec := newRequestContext(t, http.MethodPost, "/api/users/login",
		`{"email":"asha@farm.test","password":"secret1"}`)

	if err := h.LoginUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.loginEmail != "asha@farm.test" || svc.loginPassword != "secret1" {
		t.Fatalf("credentials not forwarded")
	}
}

func TestLoginUser_InvalidCredentialsPropagate(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials})
	c, _ := newRequestContext(t, http.MethodPost, "/api/users/login",
		`{"email":"asha@farm.test","password":"wrong"}`)

	if err := h.LoginUser(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestLoginUser_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, _ := newRequestContext(t, http.MethodPost, "/api/users/login", `{"email":"asha@farm.test"}`)

	err := h.LoginUser(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Profile
// ---------------------------------------------------------------------------

func TestProfile_RequiresIdentity(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, _ := newRequestContext(t, http.MethodGet, "/api/users/profile", "")

	err := h.Profile(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without gate identity, got %v", err)
	}
}

func TestUpdateProfile_ForwardsPartialUpdate(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)
	c, rec := newRequestContext(t, http.MethodPut, "/api/users/profile", `{"name":"Asha R"}`)
	c.Set(middleware.IdentityKey, &domain.Identity{ID: "user-1", Role: domain.RoleUser})

	if err := h.UpdateProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.profileUpdate.Name == nil || *svc.profileUpdate.Name != "Asha R" {
		t.Fatalf("name not forwarded")
	}
	if svc.profileUpdate.Password != nil {
		t.Fatalf("absent password must stay nil")
	}
}
