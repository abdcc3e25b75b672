package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"jokebox/src/core/domain"
	"jokebox/src/core/ports"
)

// MockRepository is a mock implementation of ports.JokeboxRepository.
type MockRepository struct {
	mock.Mock
}

var _ ports.JokeboxRepository = (*MockRepository)(nil)

func (m *MockRepository) Health(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepository) CreateUser(ctx context.Context, email, nickname, passwordHash string, role domain.Role) (*domain.User, error) {
	args := m.Called(ctx, email, nickname, passwordHash, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) GetUserByLogin(ctx context.Context, login string) (*domain.User, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockRepository) UpdateUserModeration(ctx context.Context, userID int64, jokeBalance int, role domain.Role) error {
	args := m.Called(ctx, userID, jokeBalance, role)
	return args.Error(0)
}

func (m *MockRepository) SetUserRole(ctx context.Context, userID int64, role domain.Role) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

func (m *MockRepository) CountModerators(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) AddJokeBalance(ctx context.Context, userID int64, delta int) (int, error) {
	args := m.Called(ctx, userID, delta)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) SpendJokeBalance(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) CreateJoke(ctx context.Context, ownerID int64, title, body string) (*domain.Joke, error) {
	args := m.Called(ctx, ownerID, title, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Joke), args.Error(1)
}

func (m *MockRepository) GetJokeByID(ctx context.Context, jokeID int64) (*domain.Joke, error) {
	args := m.Called(ctx, jokeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Joke), args.Error(1)
}

func (m *MockRepository) GetJokeListing(ctx context.Context, jokeID int64) (*ports.JokeListing, error) {
	args := m.Called(ctx, jokeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.JokeListing), args.Error(1)
}

func (m *MockRepository) ListJokesByOwner(ctx context.Context, ownerID int64) ([]domain.Joke, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Joke), args.Error(1)
}

func (m *MockRepository) ListJokesFromOthers(ctx context.Context, viewerID int64) ([]ports.JokeListing, error) {
	args := m.Called(ctx, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.JokeListing), args.Error(1)
}

func (m *MockRepository) TitleTakenByOwner(ctx context.Context, ownerID int64, title string) (bool, error) {
	args := m.Called(ctx, ownerID, title)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) UpdateJokeBody(ctx context.Context, jokeID int64, body string) error {
	args := m.Called(ctx, jokeID, body)
	return args.Error(0)
}

func (m *MockRepository) UpdateJokeRating(ctx context.Context, jokeID int64, rating float64) error {
	args := m.Called(ctx, jokeID, rating)
	return args.Error(0)
}

func (m *MockRepository) DeleteJoke(ctx context.Context, jokeID int64) error {
	args := m.Called(ctx, jokeID)
	return args.Error(0)
}

// stubTokens is a trivial SessionTokens implementation for auth tests.
type stubTokens struct {
	token string
	err   error
}

func (s *stubTokens) Issue(user *domain.User) (string, error) {
	return s.token, s.err
}

func (s *stubTokens) Verify(token string) (*ports.SessionClaims, error) {
	return nil, domain.NewUnauthorizedError("not implemented")
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
