package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrilink/farm-market/internal/core/domain"
	"github.com/agrilink/farm-market/internal/core/ports"
	"github.com/agrilink/farm-market/internal/core/token"
	"github.com/agrilink/farm-market/internal/pkg/password"
)

// AuthConfig groups the tunables of the authentication core. User and admin
// session lifetimes are independent settings so they cannot silently diverge
// through duplicated literals.
type AuthConfig struct {
	UserTokenTTL  time.Duration
	AdminTokenTTL time.Duration
	HashCost      int
}

// AuthService implements registration, login, and profile management against
// the two identity stores.
type AuthService struct {
	users  ports.IdentityRepository
	admins ports.IdentityRepository
	tokens *token.Issuer
	cfg    AuthConfig
	logger zerolog.Logger
}

func NewAuthService(
	users ports.IdentityRepository,
	admins ports.IdentityRepository,
	tokens *token.Issuer,
	cfg AuthConfig,
	logger zerolog.Logger,
) *AuthService {
	if cfg.UserTokenTTL <= 0 {
		cfg.UserTokenTTL = 7 * 24 * time.Hour
	}
	if cfg.AdminTokenTTL <= 0 {
		cfg.AdminTokenTTL = time.Hour
	}
	if cfg.HashCost <= 0 {
		cfg.HashCost = password.DefaultCost
	}
	return &AuthService{users: users, admins: admins, tokens: tokens, cfg: cfg, logger: logger}
}

// RegisterUser creates a regular user account. Self-registration always fixes
// the role to "user"; a token is issued immediately so the caller is logged in.
func (s *AuthService) RegisterUser(ctx context.Context, input ports.RegisterInput) (string, *domain.Identity, error) {
	return s.register(ctx, s.users, domain.RoleUser, s.cfg.UserTokenTTL, input)
}

// RegisterAdmin creates an administrator account in the admin store.
func (s *AuthService) RegisterAdmin(ctx context.Context, input ports.RegisterInput) (string, *domain.Identity, error) {
	return s.register(ctx, s.admins, domain.RoleAdmin, s.cfg.AdminTokenTTL, input)
}

// LoginUser authenticates against the users collection.
func (s *AuthService) LoginUser(ctx context.Context, email, pass string) (string, *domain.Identity, error) {
	return s.login(ctx, s.users, s.cfg.UserTokenTTL, email, pass)
}

// LoginAdmin authenticates against the admins collection.
func (s *AuthService) LoginAdmin(ctx context.Context, email, pass string) (string, *domain.Identity, error) {
	return s.login(ctx, s.admins, s.cfg.AdminTokenTTL, email, pass)
}

// Profile returns the actor's current record, re-read from its store.
func (s *AuthService) Profile(ctx context.Context, actor *domain.Identity) (*domain.Identity, error) {
	store, err := s.storeFor(actor)
	if err != nil {
		return nil, err
	}
	identity, err := store.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return identity.Sanitized(), nil
}

// UpdateProfile applies a partial mutation to the actor's own record. The
// password hash is recomputed only when the update explicitly carries a new
// password; re-saving without one leaves the stored hash untouched.
func (s *AuthService) UpdateProfile(ctx context.Context, actor *domain.Identity, update ports.ProfileUpdate) (*domain.Identity, error) {
	store, err := s.storeFor(actor)
	if err != nil {
		return nil, err
	}
	identity, err := store.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		identity.Name = *update.Name
	}
	if update.Email != nil {
		identity.Email = normalizeEmail(*update.Email)
	}
	if update.Password != nil && *update.Password != "" {
		hash, err := password.Hash(*update.Password, s.cfg.HashCost)
		if err != nil {
			return nil, err
		}
		identity.PasswordHash = hash
	}
	identity.UpdatedAt = time.Now().UTC()

	updated, err := store.Update(ctx, identity)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("id", updated.ID).Str("role", string(updated.Role)).Msg("profile updated")
	return updated.Sanitized(), nil
}

func (s *AuthService) register(
	ctx context.Context,
	store ports.IdentityRepository,
	role domain.Role,
	ttl time.Duration,
	input ports.RegisterInput,
) (string, *domain.Identity, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	email := normalizeEmail(input.Email)
	if _, err := store.FindByEmail(ctx, email); err == nil {
		return "", nil, domain.ErrIdentityExists
	} else if !errors.Is(err, domain.ErrIdentityNotFound) {
		return "", nil, err
	}

	hash, err := password.Hash(input.Password, s.cfg.HashCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	created, err := store.Create(ctx, &domain.Identity{
		Name:         input.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return "", nil, err
	}

	tok, err := s.tokens.Issue(created.ID, created.Role, ttl)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("id", created.ID).Str("role", string(created.Role)).Msg("identity registered")
	return tok, created.Sanitized(), nil
}

// login unifies unknown-email and bad-password into the same generic failure
// so callers cannot learn which part was wrong.
func (s *AuthService) login(
	ctx context.Context,
	store ports.IdentityRepository,
	ttl time.Duration,
	email, pass string,
) (string, *domain.Identity, error) {
	if email == "" || pass == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	identity, err := store.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	ok, err := password.Verify(pass, identity.PasswordHash)
	if err != nil {
		s.logger.Error().Err(err).Str("id", identity.ID).Msg("stored credential unreadable")
		return "", nil, err
	}
	if !ok {
		return "", nil, domain.ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(identity.ID, identity.Role, ttl)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("id", identity.ID).Str("role", string(identity.Role)).Msg("login successful")
	return tok, identity.Sanitized(), nil
}

func (s *AuthService) storeFor(actor *domain.Identity) (ports.IdentityRepository, error) {
	if actor == nil {
		return nil, domain.ErrInvalidCredentials
	}
	switch actor.Role {
	case domain.RoleUser:
		return s.users, nil
	case domain.RoleAdmin:
		return s.admins, nil
	default:
		return nil, domain.ErrInvalidRole
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
