// Package dto contains request payloads for the HTTP API.
// Requests carry both form and json binding tags: the browser-facing
// surface posts form-encoded bodies, API clients post JSON.
package dto

// RegisterRequest is the payload for /v1/auth/register.
type RegisterRequest struct {
	Email    string `form:"email" json:"email" binding:"required"`
	Nickname string `form:"nickname" json:"nickname" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// LoginRequest is the payload for /v1/auth/login.
// Username matches either the nickname or the email.
type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// LeaveJokeRequest is the payload for submitting a joke.
type LeaveJokeRequest struct {
	Title string `form:"title" json:"title" binding:"required"`
	Body  string `form:"body" json:"body" binding:"required"`
}

// EditJokeRequest is the payload for editing a joke's body.
// The title is immutable after creation and therefore absent.
type EditJokeRequest struct {
	Body string `form:"body" json:"body" binding:"required"`
}

// RateJokeRequest is the payload for rating a joke.
// Pointer so a zero rating still binds; the value is not range-checked.
type RateJokeRequest struct {
	Rating *float64 `form:"rating" json:"rating" binding:"required"`
}

// EditUserRequest is the payload for the direct moderator edit of a user.
// Pointers so zero values still bind.
type EditUserRequest struct {
	JokeBalance *int   `form:"joke_balance" json:"joke_balance" binding:"required"`
	Role        string `form:"role" json:"role" binding:"required"`
}
