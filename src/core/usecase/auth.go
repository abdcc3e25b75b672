package usecase

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"jokebox/src/core/domain"
	"jokebox/src/core/ports"
)

// AuthService handles registration and login.
type AuthService struct {
	repo       ports.JokeboxRepository
	tokens     ports.SessionTokens
	bcryptCost int
	log        *slog.Logger
}

func NewAuthService(repo ports.JokeboxRepository, tokens ports.SessionTokens, bcryptCost int, log *slog.Logger) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{repo: repo, tokens: tokens, bcryptCost: bcryptCost, log: log}
}

// Register creates a new account with role User and an empty joke balance.
func (s *AuthService) Register(ctx context.Context, email, nickname, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	nickname = strings.TrimSpace(nickname)
	if email == "" {
		return nil, domain.NewValidationError("email", "email is required")
	}
	if nickname == "" {
		return nil, domain.NewValidationError("nickname", "nickname is required")
	}
	if password == "" {
		return nil, domain.NewValidationError("password", "password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.CreateUser(ctx, email, nickname, string(hash), domain.RoleUser)
	if err != nil {
		return nil, err
	}
	s.log.Info("user registered", "user_id", user.ID, "nickname", user.Nickname)
	return user, nil
}

type LoginResult struct {
	User  *domain.User
	Token string
}

// Login authenticates by nickname or email plus password and issues a
// session token. Unknown user and wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.repo.GetUserByLogin(ctx, strings.TrimSpace(username))
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewUnauthorizedError("invalid username or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.log.Warn("failed login attempt", "username", username)
		return nil, domain.NewUnauthorizedError("invalid username or password")
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	s.log.Info("user logged in", "user_id", user.ID, "nickname", user.Nickname, "role", user.Role)
	return &LoginResult{User: user, Token: token}, nil
}
