// Package repo contains the PostgreSQL implementation of the repository ports.
package repo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"jokebox/src/core/domain"
	"jokebox/src/core/ports"
	"jokebox/src/infra/db"
)

// PostgresRepository implements JokeboxRepository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgresRepository constructs a repository backed by Postgres.
func NewPostgresRepository(pg *db.Postgres, log *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		pool: pg.Pool,
		log:  log,
	}
}

var _ ports.JokeboxRepository = (*PostgresRepository)(nil)

func (r *PostgresRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// Users

func (r *PostgresRepository) CreateUser(ctx context.Context, email, nickname, passwordHash string, role domain.Role) (*domain.User, error) {
	const q = `
		INSERT INTO users (email, nickname, password, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, email, nickname, password, role, joke_balance
	`
	var u domain.User
	err := r.pool.QueryRow(ctx, q, email, nickname, passwordHash, role).Scan(
		&u.ID, &u.Email, &u.Nickname, &u.Password, &u.Role, &u.JokeBalance,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewAlreadyExistsError("email or nickname already taken")
		}
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	const q = `
		SELECT id, email, nickname, password, role, joke_balance
		FROM users
		WHERE id = $1
	`
	var u domain.User
	if err := r.pool.QueryRow(ctx, q, userID).Scan(
		&u.ID, &u.Email, &u.Nickname, &u.Password, &u.Role, &u.JokeBalance,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) GetUserByLogin(ctx context.Context, login string) (*domain.User, error) {
	const q = `
		SELECT id, email, nickname, password, role, joke_balance
		FROM users
		WHERE nickname = $1 OR email = $1
	`
	var u domain.User
	if err := r.pool.QueryRow(ctx, q, login).Scan(
		&u.ID, &u.Email, &u.Nickname, &u.Password, &u.Role, &u.JokeBalance,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	const q = `
		SELECT id, email, nickname, role, joke_balance
		FROM users
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Nickname, &u.Role, &u.JokeBalance); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PostgresRepository) UpdateUserModeration(ctx context.Context, userID int64, jokeBalance int, role domain.Role) error {
	const q = `
		UPDATE users
		SET joke_balance = $2, role = $3
		WHERE id = $1
	`
	res, err := r.pool.Exec(ctx, q, userID, jokeBalance, role)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("user")
	}
	return nil
}

func (r *PostgresRepository) SetUserRole(ctx context.Context, userID int64, role domain.Role) error {
	const q = `
		UPDATE users
		SET role = $2
		WHERE id = $1
	`
	res, err := r.pool.Exec(ctx, q, userID, role)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("user")
	}
	return nil
}

func (r *PostgresRepository) CountModerators(ctx context.Context) (int, error) {
	const q = `SELECT COUNT(*) FROM users WHERE role = 'Moderator'`
	var count int
	if err := r.pool.QueryRow(ctx, q).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) AddJokeBalance(ctx context.Context, userID int64, delta int) (int, error) {
	const q = `
		UPDATE users
		SET joke_balance = joke_balance + $2
		WHERE id = $1
		RETURNING joke_balance
	`
	var balance int
	if err := r.pool.QueryRow(ctx, q, userID, delta).Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.NewNotFoundError("user")
		}
		return 0, err
	}
	return balance, nil
}

// SpendJokeBalance applies the view cost as one atomic statement so
// concurrent views never decrement the same unit twice or go below zero.
func (r *PostgresRepository) SpendJokeBalance(ctx context.Context, userID int64) (int, error) {
	const q = `
		UPDATE users
		SET joke_balance = GREATEST(joke_balance - 1, 0)
		WHERE id = $1
		RETURNING joke_balance
	`
	var balance int
	if err := r.pool.QueryRow(ctx, q, userID).Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.NewNotFoundError("user")
		}
		return 0, err
	}
	return balance, nil
}

// Jokes

func (r *PostgresRepository) CreateJoke(ctx context.Context, ownerID int64, title, body string) (*domain.Joke, error) {
	const q = `
		INSERT INTO jokes (title, body, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, title, body, user_id, created, rating
	`
	var j domain.Joke
	err := r.pool.QueryRow(ctx, q, title, body, ownerID).Scan(
		&j.ID, &j.Title, &j.Body, &j.OwnerID, &j.Created, &j.Rating,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewConflictError("you have already used this title")
		}
		return nil, err
	}
	return &j, nil
}

func (r *PostgresRepository) GetJokeByID(ctx context.Context, jokeID int64) (*domain.Joke, error) {
	const q = `
		SELECT id, title, body, user_id, created, rating
		FROM jokes
		WHERE id = $1
	`
	var j domain.Joke
	if err := r.pool.QueryRow(ctx, q, jokeID).Scan(
		&j.ID, &j.Title, &j.Body, &j.OwnerID, &j.Created, &j.Rating,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("joke")
		}
		return nil, err
	}
	return &j, nil
}

func (r *PostgresRepository) GetJokeListing(ctx context.Context, jokeID int64) (*ports.JokeListing, error) {
	const q = `
		SELECT j.id, j.title, j.body, j.rating, j.user_id, u.nickname, j.created
		FROM jokes j
		JOIN users u ON j.user_id = u.id
		WHERE j.id = $1
	`
	var l ports.JokeListing
	if err := r.pool.QueryRow(ctx, q, jokeID).Scan(
		&l.ID, &l.Title, &l.Body, &l.Rating, &l.OwnerID, &l.Nickname, &l.Created,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("joke")
		}
		return nil, err
	}
	return &l, nil
}

func (r *PostgresRepository) ListJokesByOwner(ctx context.Context, ownerID int64) ([]domain.Joke, error) {
	const q = `
		SELECT id, title, body, user_id, created, rating
		FROM jokes
		WHERE user_id = $1
		ORDER BY created DESC, id DESC
	`
	rows, err := r.pool.Query(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jokes []domain.Joke
	for rows.Next() {
		var j domain.Joke
		if err := rows.Scan(&j.ID, &j.Title, &j.Body, &j.OwnerID, &j.Created, &j.Rating); err != nil {
			return nil, err
		}
		jokes = append(jokes, j)
	}
	return jokes, rows.Err()
}

func (r *PostgresRepository) ListJokesFromOthers(ctx context.Context, viewerID int64) ([]ports.JokeListing, error) {
	const q = `
		SELECT j.id, j.title, j.body, j.rating, j.user_id, u.nickname, j.created
		FROM jokes j
		JOIN users u ON j.user_id = u.id
		WHERE j.user_id <> $1
		ORDER BY j.created DESC, j.id DESC
	`
	rows, err := r.pool.Query(ctx, q, viewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []ports.JokeListing
	for rows.Next() {
		var l ports.JokeListing
		if err := rows.Scan(&l.ID, &l.Title, &l.Body, &l.Rating, &l.OwnerID, &l.Nickname, &l.Created); err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

func (r *PostgresRepository) TitleTakenByOwner(ctx context.Context, ownerID int64, title string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM jokes WHERE user_id = $1 AND title = $2)`
	var taken bool
	if err := r.pool.QueryRow(ctx, q, ownerID, title).Scan(&taken); err != nil {
		return false, err
	}
	return taken, nil
}

func (r *PostgresRepository) UpdateJokeBody(ctx context.Context, jokeID int64, body string) error {
	const q = `
		UPDATE jokes
		SET body = $2
		WHERE id = $1
	`
	res, err := r.pool.Exec(ctx, q, jokeID, body)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("joke")
	}
	return nil
}

func (r *PostgresRepository) UpdateJokeRating(ctx context.Context, jokeID int64, rating float64) error {
	const q = `
		UPDATE jokes
		SET rating = $2
		WHERE id = $1
	`
	res, err := r.pool.Exec(ctx, q, jokeID, rating)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("joke")
	}
	return nil
}

func (r *PostgresRepository) DeleteJoke(ctx context.Context, jokeID int64) error {
	const q = `DELETE FROM jokes WHERE id = $1`
	res, err := r.pool.Exec(ctx, q, jokeID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("joke")
	}
	return nil
}
