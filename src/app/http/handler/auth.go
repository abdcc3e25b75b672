// Package handler contains HTTP handlers for the API.
// Handlers are responsible for:
// - Parsing and validating HTTP requests
// - Calling use case methods
// - Converting results to HTTP responses
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"jokebox/src/app/http/dto"
	"jokebox/src/app/http/response"
	"jokebox/src/app/middleware"
	"jokebox/src/core/domain"
	"jokebox/src/core/usecase"
)

// AuthHandler handles registration, login and the identity endpoint.
type AuthHandler struct {
	authService *usecase.AuthService
}

func NewAuthHandler(authService *usecase.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new account.
// POST /v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "email, nickname and password are required", middleware.GetRequestID(c))
		return
	}
	user, err := h.authService.Register(c.Request.Context(), req.Email, req.Nickname, req.Password)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, userJSON(user))
}

// Login authenticates and returns a session token.
// POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "username and password are required", middleware.GetRequestID(c))
		return
	}
	result, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, gin.H{
		"token": result.Token,
		"user":  userJSON(result.User),
	})
}

// Me returns the authenticated identity.
// GET /v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "not authenticated", middleware.GetRequestID(c))
		return
	}
	response.OK(c, gin.H{
		"user_id":      identity.UserID,
		"email":        identity.Email,
		"nickname":     identity.Nickname,
		"role":         identity.Role,
		"joke_balance": identity.JokeBalance,
	})
}

func userJSON(u *domain.User) gin.H {
	return gin.H{
		"user_id":      u.ID,
		"email":        u.Email,
		"nickname":     u.Nickname,
		"role":         u.Role,
		"joke_balance": u.JokeBalance,
	}
}

// requireIdentity pulls the identity set by the session middleware,
// responding 401 when it is absent.
func requireIdentity(c *gin.Context) (domain.Identity, bool) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "not authenticated", middleware.GetRequestID(c))
	}
	return identity, ok
}

// parseIDParam parses a positive int64 path parameter.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid "+name, middleware.GetRequestID(c))
		return 0, false
	}
	return id, true
}
