package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jokebox/src/core/domain"
)

func TestUsers_RequiresModerator(t *testing.T) {
	repo := new(MockRepository)
	svc := NewModerationService(repo, testLogger())

	actor := domain.Identity{UserID: 1, Role: domain.RoleUser}
	_, err := svc.Users(context.Background(), actor)

	assert.True(t, domain.IsForbidden(err))
	repo.AssertNotCalled(t, "ListUsers", mock.Anything)
}

func TestUsers_ListsAll(t *testing.T) {
	repo := new(MockRepository)
	svc := NewModerationService(repo, testLogger())

	actor := domain.Identity{UserID: 1, Role: domain.RoleModerator}
	repo.On("ListUsers", mock.Anything).Return([]domain.User{
		{ID: 1, Nickname: "mod", Role: domain.RoleModerator},
		{ID: 2, Nickname: "alice", Role: domain.RoleUser, JokeBalance: 3},
	}, nil)

	users, err := svc.Users(context.Background(), actor)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestToggle_LastModeratorKept(t *testing.T) {
	repo := new(MockRepository)
	svc := NewModerationService(repo, testLogger())

	// The sole moderator toggles their own id.
	actor := domain.Identity{UserID: 1, Role: domain.RoleModerator}
	target := &domain.User{ID: 1, Nickname: "mod", Role: domain.RoleModerator}

	repo.On("GetUserByID", mock.Anything, int64(1)).Return(target, nil)
	repo.On("CountModerators", mock.Anything).Return(1, nil)

	_, err := svc.ToggleModerator(context.Background(), actor, 1)

	assert.True(t, domain.IsConflict(err))
	assert.Equal(t, domain.RoleModerator, target.Role)
	repo.AssertNotCalled(t, "SetUserRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestToggle_DemotesWhenOthersRemain(t *testing.T) {
	repo := new(MockRepository)
	svc := NewModerationService(repo, testLogger())

	actor := domain.Identity{UserID: 1, Role: domain.RoleModerator}
	target := &domain.User{ID: 2, Nickname: "othermod", Role: domain.RoleModerator}
	demoted := &domain.User{ID: 2, Nickname: "othermod", Role: domain.RoleUser}

	repo.On("GetUserByID", mock.Anything, int64(2)).Return(target, nil).Once()
	repo.On("CountModerators", mock.Anything).Return(2, nil)
	repo.On("SetUserRole", mock.Anything, int64(2), domain.RoleUser).Return(nil)
	repo.On("GetUserByID", mock.Anything, int64(2)).Return(demoted, nil).Once()

	user, err := svc.ToggleModerator(context.Background(), actor, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, user.Role)
	repo.AssertExpectations(t)
}

func TestToggle_PromotesUser(t *testing.T) {
	repo := new(MockRepository)
	svc := NewModerationService(repo, testLogger())

	actor := domain.Identity{UserID: 1, Role: domain.RoleModerator}
	target := &domain.User{ID: 3, Nickname: "alice", Role: domain.RoleUser}
	promoted := &domain.User{ID: 3, Nickname: "alice", Role: domain.RoleModerator}

	repo.On("GetUserByID", mock.Anything, int64(3)).Return(target, nil).Once()
	repo.On("SetUserRole", mock.Anything, int64(3), domain.RoleModerator).Return(nil)
	repo.On("GetUserByID", mock.Anything, int64(3)).Return(promoted, nil).Once()

	user, err := svc.ToggleModerator(context.Background(), actor, 3)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleModerator, user.Role)
	// Promotion never needs the moderator count.
	repo.AssertNotCalled(t, "CountModerators", mock.Anything)
}

func TestToggle_RequiresModerator(t *testing.T) {
	repo := new(MockRepository)
	svc := NewModerationService(repo, testLogger())

	actor := domain.Identity{UserID: 2, Role: domain.RoleUser}
	_, err := svc.ToggleModerator(context.Background(), actor, 3)

	assert.True(t, domain.IsForbidden(err))
	repo.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything)
}

func TestEditUser_NegativeBalanceRejected(t *testing.T) {
	repo := new(MockRepository)
	svc := NewModerationService(repo, testLogger())

	actor := domain.Identity{UserID: 1, Role: domain.RoleModerator}
	_, err := svc.EditUser(context.Background(), actor, 2, -1, domain.RoleUser)

	assert.True(t, domain.IsValidationError(err))
	repo.AssertNotCalled(t, "UpdateUserModeration", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEditUser_UnknownRoleRejected(t *testing.T) {
	repo := new(MockRepository)
	svc := NewModerationService(repo, testLogger())

	actor := domain.Identity{UserID: 1, Role: domain.RoleModerator}
	_, err := svc.EditUser(context.Background(), actor, 2, 5, domain.Role("Admin"))

	assert.True(t, domain.IsValidationError(err))
}

func TestEditUser_LastModeratorGuardAppliesHereToo(t *testing.T) {
	repo := new(MockRepository)
	svc := NewModerationService(repo, testLogger())

	actor := domain.Identity{UserID: 1, Role: domain.RoleModerator}
	target := &domain.User{ID: 1, Nickname: "mod", Role: domain.RoleModerator}

	repo.On("GetUserByID", mock.Anything, int64(1)).Return(target, nil)
	repo.On("CountModerators", mock.Anything).Return(1, nil)

	_, err := svc.EditUser(context.Background(), actor, 1, 5, domain.RoleUser)

	assert.True(t, domain.IsConflict(err))
	repo.AssertNotCalled(t, "UpdateUserModeration", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEditUser_SetsBalanceAndRole(t *testing.T) {
	repo := new(MockRepository)
	svc := NewModerationService(repo, testLogger())

	actor := domain.Identity{UserID: 1, Role: domain.RoleModerator}
	target := &domain.User{ID: 2, Nickname: "alice", Role: domain.RoleUser, JokeBalance: 0}
	updated := &domain.User{ID: 2, Nickname: "alice", Role: domain.RoleUser, JokeBalance: 7}

	repo.On("GetUserByID", mock.Anything, int64(2)).Return(target, nil).Once()
	repo.On("UpdateUserModeration", mock.Anything, int64(2), 7, domain.RoleUser).Return(nil)
	repo.On("GetUserByID", mock.Anything, int64(2)).Return(updated, nil).Once()

	user, err := svc.EditUser(context.Background(), actor, 2, 7, domain.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, 7, user.JokeBalance)
	repo.AssertExpectations(t)
}
