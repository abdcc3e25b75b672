package usecase

import (
	"context"
	"log/slog"

	"jokebox/src/core/domain"
	"jokebox/src/core/ports"
)

// ModerationService handles moderator-only user management.
type ModerationService struct {
	repo ports.JokeboxRepository
	log  *slog.Logger
}

func NewModerationService(repo ports.JokeboxRepository, log *slog.Logger) *ModerationService {
	return &ModerationService{repo: repo, log: log}
}

// Users lists all accounts for the moderation overview.
func (s *ModerationService) Users(ctx context.Context, actor domain.Identity) ([]domain.User, error) {
	if err := requireModerator(actor); err != nil {
		return nil, err
	}
	return s.repo.ListUsers(ctx)
}

// EditUser sets a target user's joke balance and role directly.
// A role change that would leave the system without moderators is refused
// on this path too, keeping both mutation paths under the same invariant.
func (s *ModerationService) EditUser(ctx context.Context, actor domain.Identity, targetID int64, jokeBalance int, role domain.Role) (*domain.User, error) {
	if err := requireModerator(actor); err != nil {
		return nil, err
	}
	if jokeBalance < 0 {
		return nil, domain.NewValidationError("joke_balance", "joke balance must be a non-negative integer")
	}
	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "role must be User or Moderator")
	}

	target, err := s.repo.GetUserByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target.Role == domain.RoleModerator && role != domain.RoleModerator {
		if err := s.ensureNotLastModerator(ctx); err != nil {
			s.log.Warn("refused demotion of last moderator", "actor_id", actor.UserID, "target_id", targetID)
			return nil, err
		}
	}

	if err := s.repo.UpdateUserModeration(ctx, targetID, jokeBalance, role); err != nil {
		return nil, err
	}
	s.log.Info("user updated by moderator",
		"actor_id", actor.UserID, "target_id", targetID,
		"joke_balance", jokeBalance, "role", role,
	)
	return s.repo.GetUserByID(ctx, targetID)
}

// ToggleModerator flips a target user's role between User and Moderator.
// Demoting the last remaining moderator is refused.
func (s *ModerationService) ToggleModerator(ctx context.Context, actor domain.Identity, targetID int64) (*domain.User, error) {
	if err := requireModerator(actor); err != nil {
		return nil, err
	}
	target, err := s.repo.GetUserByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	newRole := domain.RoleModerator
	if target.Role == domain.RoleModerator {
		if err := s.ensureNotLastModerator(ctx); err != nil {
			s.log.Warn("refused demotion of last moderator", "actor_id", actor.UserID, "target_id", targetID)
			return nil, err
		}
		newRole = domain.RoleUser
	}

	if err := s.repo.SetUserRole(ctx, targetID, newRole); err != nil {
		return nil, err
	}
	s.log.Info("user role toggled",
		"actor_id", actor.UserID, "target_id", targetID,
		"from", target.Role, "to", newRole,
	)
	return s.repo.GetUserByID(ctx, targetID)
}

// ensureNotLastModerator refuses any demotion while only one moderator exists.
func (s *ModerationService) ensureNotLastModerator(ctx context.Context) error {
	count, err := s.repo.CountModerators(ctx)
	if err != nil {
		return err
	}
	if count <= 1 {
		return domain.NewConflictError("cannot remove the last moderator")
	}
	return nil
}
