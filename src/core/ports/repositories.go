// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"
	"time"

	"jokebox/src/core/domain"
)

// Repository is the base interface for all repositories.
// Concrete repositories should embed this and add entity-specific methods.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// JokeListing is a joke row joined with its owner's nickname,
// materialized at the storage boundary instead of a raw row map.
type JokeListing struct {
	ID       int64
	Title    string
	Body     string
	Rating   float64
	OwnerID  int64
	Nickname string
	Created  time.Time
}

// JokeboxRepository covers all persistence operations for users and jokes.
type JokeboxRepository interface {
	Repository

	// Users
	CreateUser(ctx context.Context, email, nickname, passwordHash string, role domain.Role) (*domain.User, error)
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
	// GetUserByLogin resolves a user by nickname or email.
	GetUserByLogin(ctx context.Context, login string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	// UpdateUserModeration sets balance and role in one statement (direct moderator edit).
	UpdateUserModeration(ctx context.Context, userID int64, jokeBalance int, role domain.Role) error
	SetUserRole(ctx context.Context, userID int64, role domain.Role) error
	CountModerators(ctx context.Context) (int, error)
	// AddJokeBalance adds delta to the user's balance and returns the new balance.
	AddJokeBalance(ctx context.Context, userID int64, delta int) (int, error)
	// SpendJokeBalance decrements the user's balance by one, floored at zero,
	// in a single atomic statement. Returns the new balance.
	SpendJokeBalance(ctx context.Context, userID int64) (int, error)

	// Jokes
	CreateJoke(ctx context.Context, ownerID int64, title, body string) (*domain.Joke, error)
	GetJokeByID(ctx context.Context, jokeID int64) (*domain.Joke, error)
	// GetJokeListing returns a single joke joined with the owner's nickname.
	GetJokeListing(ctx context.Context, jokeID int64) (*JokeListing, error)
	ListJokesByOwner(ctx context.Context, ownerID int64) ([]domain.Joke, error)
	// ListJokesFromOthers returns jokes not owned by the viewer.
	ListJokesFromOthers(ctx context.Context, viewerID int64) ([]JokeListing, error)
	TitleTakenByOwner(ctx context.Context, ownerID int64, title string) (bool, error)
	UpdateJokeBody(ctx context.Context, jokeID int64, body string) error
	UpdateJokeRating(ctx context.Context, jokeID int64, rating float64) error
	DeleteJoke(ctx context.Context, jokeID int64) error
}
