package handler

import (
	"github.com/gin-gonic/gin"

	"jokebox/src/app/http/dto"
	"jokebox/src/app/http/response"
	"jokebox/src/app/middleware"
	"jokebox/src/core/domain"
	"jokebox/src/core/ports"
	"jokebox/src/core/usecase"
)

// JokeHandler handles joke endpoints.
type JokeHandler struct {
	jokeService *usecase.JokeService
}

func NewJokeHandler(jokeService *usecase.JokeService) *JokeHandler {
	return &JokeHandler{jokeService: jokeService}
}

// Leave submits a new joke.
// POST /v1/jokes
func (h *JokeHandler) Leave(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	var req dto.LeaveJokeRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "title and body are required", middleware.GetRequestID(c))
		return
	}
	result, err := h.jokeService.Leave(c.Request.Context(), identity, req.Title, req.Body)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, gin.H{
		"joke":         jokeJSON(result.Joke),
		"joke_balance": result.JokeBalance,
	})
}

// Mine lists the caller's own jokes.
// GET /v1/jokes/mine
func (h *JokeHandler) Mine(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	jokes, err := h.jokeService.Mine(c.Request.Context(), identity)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	out := make([]gin.H, 0, len(jokes))
	for i := range jokes {
		out = append(out, jokeJSON(&jokes[i]))
	}
	response.OK(c, gin.H{
		"jokes":        out,
		"joke_balance": identity.JokeBalance,
	})
}

// List shows other users' jokes.
// GET /v1/jokes
func (h *JokeHandler) List(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	listings, err := h.jokeService.List(c.Request.Context(), identity)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	out := make([]gin.H, 0, len(listings))
	for i := range listings {
		out = append(out, listingJSON(&listings[i]))
	}
	response.OK(c, gin.H{
		"jokes":        out,
		"joke_balance": identity.JokeBalance,
	})
}

// View shows a single joke, applying the view cost for non-owners.
// GET /v1/jokes/:joke_id
func (h *JokeHandler) View(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	jokeID, ok := parseIDParam(c, "joke_id")
	if !ok {
		return
	}
	result, err := h.jokeService.View(c.Request.Context(), identity, jokeID)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, gin.H{
		"joke":         listingJSON(result.Joke),
		"joke_balance": result.JokeBalance,
	})
}

// Rate submits a rating for a joke.
// POST /v1/jokes/:joke_id/rating
func (h *JokeHandler) Rate(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	jokeID, ok := parseIDParam(c, "joke_id")
	if !ok {
		return
	}
	var req dto.RateJokeRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "rating is required", middleware.GetRequestID(c))
		return
	}
	result, err := h.jokeService.Rate(c.Request.Context(), identity, jokeID, *req.Rating)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, gin.H{
		"joke_id":      jokeID,
		"rating":       result.Rating,
		"joke_balance": result.JokeBalance,
	})
}

// Edit replaces a joke's body.
// PUT /v1/jokes/:joke_id
func (h *JokeHandler) Edit(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	jokeID, ok := parseIDParam(c, "joke_id")
	if !ok {
		return
	}
	var req dto.EditJokeRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "body is required", middleware.GetRequestID(c))
		return
	}
	joke, err := h.jokeService.Edit(c.Request.Context(), identity, jokeID, req.Body)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, gin.H{"joke": jokeJSON(joke)})
}

// Delete removes a joke.
// DELETE /v1/jokes/:joke_id
func (h *JokeHandler) Delete(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	jokeID, ok := parseIDParam(c, "joke_id")
	if !ok {
		return
	}
	if err := h.jokeService.Delete(c.Request.Context(), identity, jokeID); err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.NoContent(c)
}

func jokeJSON(j *domain.Joke) gin.H {
	return gin.H{
		"joke_id": j.ID,
		"title":   j.Title,
		"body":    j.Body,
		"rating":  j.Rating,
		"created": j.Created,
	}
}

func listingJSON(l *ports.JokeListing) gin.H {
	return gin.H{
		"joke_id":  l.ID,
		"title":    l.Title,
		"body":     l.Body,
		"rating":   l.Rating,
		"owner_id": l.OwnerID,
		"nickname": l.Nickname,
		"created":  l.Created,
	}
}
