package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/meugerenciamento/gerenciamento-api/internal/core/domain"
	"github.com/meugerenciamento/gerenciamento-api/internal/core/ports"
)

// UserService implements profile self-service and admin user management.
type UserService struct {
	repo   ports.UserRepository
	counts ports.CountCache
	audit  ports.AuditRecorder
	log    zerolog.Logger
}

// NewUserService wires the user use cases. counts and audit may be nil.
func NewUserService(repo ports.UserRepository, counts ports.CountCache, audit ports.AuditRecorder, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, counts: counts, audit: audit, log: log}
}

// Profile returns the identity behind a verified session.
func (s *UserService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// UpdateProfile changes name, email or phone. A new email must not belong to
// another identity.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, upd domain.ProfileUpdate) (*domain.User, error) {
	current, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	upd.Name = strings.TrimSpace(upd.Name)
	upd.Email = domain.NormalizeEmail(upd.Email)
	upd.Phone = strings.TrimSpace(upd.Phone)

	if upd.Email != "" && upd.Email != current.Email {
		other, err := s.repo.FindByEmail(ctx, upd.Email)
		switch {
		case err == nil && other.ID != current.ID:
			return nil, domain.ErrEmailTaken
		case err != nil && !errors.Is(err, domain.ErrUserNotFound):
			return nil, err
		}
	}

	if upd.Empty() {
		return current, nil
	}
	return s.repo.UpdateProfile(ctx, userID, upd)
}

// List returns every identity.
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// Delete removes an identity.
func (s *UserService) Delete(ctx context.Context, actorID, userID string) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		return err
	}

	invalidateCounts(ctx, s.counts, s.log)
	record(s.audit, domain.AuditEntry{
		ActorID:   actorID,
		Action:    domain.ActionUserDelete,
		TargetID:  userID,
		Timestamp: time.Now().UTC(),
	})
	s.log.Info().Str("actor_id", actorID).Str("user_id", userID).Msg("user deleted")
	return nil
}

// ChangeRole sets the role of an identity to one of the known roles.
func (s *UserService) ChangeRole(ctx context.Context, actorID, userID, role string) (*domain.User, error) {
	role = strings.ToLower(strings.TrimSpace(role))
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	user, err := s.repo.UpdateRole(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	record(s.audit, domain.AuditEntry{
		ActorID:   actorID,
		Action:    domain.ActionUserRole,
		TargetID:  userID,
		Detail:    role,
		Timestamp: time.Now().UTC(),
	})
	s.log.Info().Str("actor_id", actorID).Str("user_id", userID).Str("role", role).Msg("user role changed")
	return user, nil
}
