package handler

import (
	"github.com/gin-gonic/gin"

	"jokebox/src/app/http/dto"
	"jokebox/src/app/http/response"
	"jokebox/src/app/middleware"
	"jokebox/src/core/domain"
	"jokebox/src/core/usecase"
)

// ModerationHandler handles moderator-only user management endpoints.
type ModerationHandler struct {
	moderationService *usecase.ModerationService
}

func NewModerationHandler(moderationService *usecase.ModerationService) *ModerationHandler {
	return &ModerationHandler{moderationService: moderationService}
}

// Users lists all accounts.
// GET /v1/moderation/users
func (h *ModerationHandler) Users(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	users, err := h.moderationService.Users(c.Request.Context(), identity)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	out := make([]gin.H, 0, len(users))
	for i := range users {
		out = append(out, userJSON(&users[i]))
	}
	response.OK(c, gin.H{"users": out})
}

// EditUser sets a user's joke balance and role directly.
// PUT /v1/moderation/users/:user_id
func (h *ModerationHandler) EditUser(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	targetID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	var req dto.EditUserRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "joke_balance and role are required", middleware.GetRequestID(c))
		return
	}
	user, err := h.moderationService.EditUser(c.Request.Context(), identity, targetID, *req.JokeBalance, domain.Role(req.Role))
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, gin.H{"user": userJSON(user)})
}

// ToggleModerator flips a user's role between User and Moderator.
// POST /v1/moderation/users/:user_id/toggle
func (h *ModerationHandler) ToggleModerator(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	targetID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	user, err := h.moderationService.ToggleModerator(c.Request.Context(), identity, targetID)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, gin.H{"user": userJSON(user)})
}
