// Package usecase contains application services implementing the business rules.
// Services hold a repository port and a logger; handlers stay thin.
package usecase

import "jokebox/src/core/domain"

// Authorization guards. Each guard takes the request identity and returns
// nil (allow) or a domain error carrying the denial reason. Handlers and
// services compose them by calling guards in sequence at the top of an
// operation instead of wrapping handlers in decorators.

// requireModerator allows only moderators.
func requireModerator(id domain.Identity) error {
	if !id.IsModerator() {
		return domain.NewForbiddenError("moderator role required")
	}
	return nil
}

// requireViewingBalance gates access to other users' jokes: a non-moderator
// with an empty joke balance is refused before any cost rule runs.
// Moderators always pass.
func requireViewingBalance(id domain.Identity) error {
	if id.JokeBalance == 0 && !id.IsModerator() {
		return domain.NewForbiddenError("joke balance is empty, leave another joke to view more")
	}
	return nil
}

// requireOwnerOrModerator allows the joke's owner and any moderator.
func requireOwnerOrModerator(id domain.Identity, joke *domain.Joke) error {
	if joke.OwnerID != id.UserID && !id.IsModerator() {
		return domain.NewForbiddenError("only the owner or a moderator may do this")
	}
	return nil
}
