package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

var ErrBootstrapIncomplete = errors.New("bootstrap admin needs name, email and password")

// BootstrapService seeds the first Admin so that the Admin-only createUser
// mutation can be reached on a fresh process.
type BootstrapService struct {
	Store store.Store
	Users *UserService
}

// IsBootstrapped reports whether an Admin user exists.
func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	admins, err := s.Store.Users().ListUsersByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return false, err
	}
	return len(admins) > 0, nil
}

// EnsureAdmin creates the given Admin unless one already exists. It returns
// true when a user was created.
func (s *BootstrapService) EnsureAdmin(ctx context.Context, name, email, password string) (bool, error) {
	l := slogx.FromContext(ctx)

	bootstrapped, err := s.IsBootstrapped(ctx)
	if err != nil {
		return false, err
	}
	if bootstrapped {
		l.Debug("admin already present, skipping bootstrap")
		return false, nil
	}

	if name == "" || email == "" || password == "" {
		return false, ErrBootstrapIncomplete
	}

	u, err := s.Users.CreateUser(ctx, domain.NewUser{
		Name:     name,
		Email:    email,
		Role:     domain.RoleAdmin,
		Password: password,
	})
	if err != nil {
		l.Error("failed to create bootstrap admin", slog.Any("error", err))
		return false, err
	}

	l.Info("bootstrap admin created", slog.Int64("user_id", u.ID))
	return true, nil
}
