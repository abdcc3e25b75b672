package usecase

import (
	"context"
	"log/slog"

	"jokebox/src/core/domain"
	"jokebox/src/core/ports"
)

// JokeService implements the joke balance and rating workflow.
type JokeService struct {
	repo ports.JokeboxRepository
	log  *slog.Logger
}

func NewJokeService(repo ports.JokeboxRepository, log *slog.Logger) *JokeService {
	return &JokeService{repo: repo, log: log}
}

// LeaveResult is the outcome of a successful joke submission.
type LeaveResult struct {
	Joke        *domain.Joke
	JokeBalance int
}

// Leave creates a joke and rewards the author with one balance unit.
// Moderators are not allowed to leave jokes.
func (s *JokeService) Leave(ctx context.Context, actor domain.Identity, title, body string) (*LeaveResult, error) {
	if actor.IsModerator() {
		s.log.Warn("moderator tried to leave a joke", "user_id", actor.UserID)
		return nil, domain.NewForbiddenError("moderators are not allowed to leave jokes")
	}
	if err := domain.ValidateTitle(title); err != nil {
		return nil, err
	}
	if err := domain.ValidateBody(body); err != nil {
		return nil, err
	}
	taken, err := s.repo.TitleTakenByOwner(ctx, actor.UserID, title)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.NewConflictError("you have already used this title")
	}

	joke, err := s.repo.CreateJoke(ctx, actor.UserID, title, body)
	if err != nil {
		return nil, err
	}
	balance, err := s.repo.AddJokeBalance(ctx, actor.UserID, 1)
	if err != nil {
		return nil, err
	}
	s.log.Info("joke left", "user_id", actor.UserID, "joke_id", joke.ID, "title", joke.Title)
	return &LeaveResult{Joke: joke, JokeBalance: balance}, nil
}

// Mine lists the actor's own jokes. Always free, any balance.
func (s *JokeService) Mine(ctx context.Context, actor domain.Identity) ([]domain.Joke, error) {
	return s.repo.ListJokesByOwner(ctx, actor.UserID)
}

// List returns other users' jokes. A non-moderator with an empty balance
// is refused before anything is read; listing itself never costs balance.
func (s *JokeService) List(ctx context.Context, actor domain.Identity) ([]ports.JokeListing, error) {
	if err := requireViewingBalance(actor); err != nil {
		s.log.Warn("joke list refused, empty balance", "user_id", actor.UserID)
		return nil, err
	}
	return s.repo.ListJokesFromOthers(ctx, actor.UserID)
}

// ViewResult is a viewed joke plus the viewer's balance after the view cost.
type ViewResult struct {
	Joke        *ports.JokeListing
	JokeBalance int
}

// View returns a single joke. Viewing someone else's joke costs one balance
// unit, applied as a single atomic decrement floored at zero. Owner views
// and moderator views are free.
func (s *JokeService) View(ctx context.Context, actor domain.Identity, jokeID int64) (*ViewResult, error) {
	if err := requireViewingBalance(actor); err != nil {
		s.log.Warn("joke view refused, empty balance", "user_id", actor.UserID, "joke_id", jokeID)
		return nil, err
	}
	joke, err := s.repo.GetJokeListing(ctx, jokeID)
	if err != nil {
		return nil, err
	}

	balance := actor.JokeBalance
	if joke.OwnerID != actor.UserID && !actor.IsModerator() {
		balance, err = s.repo.SpendJokeBalance(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
	}
	return &ViewResult{Joke: joke, JokeBalance: balance}, nil
}

// RateResult is the merged rating and the rater's rewarded balance.
type RateResult struct {
	Rating      float64
	JokeBalance int
}

// Rate folds a caller-supplied rating into the joke's running rating and
// rewards the rater with one balance unit. Owners cannot rate their own
// jokes. The rating value itself is not range-checked.
func (s *JokeService) Rate(ctx context.Context, actor domain.Identity, jokeID int64, rating float64) (*RateResult, error) {
	if err := requireViewingBalance(actor); err != nil {
		return nil, err
	}
	joke, err := s.repo.GetJokeByID(ctx, jokeID)
	if err != nil {
		return nil, err
	}
	if joke.OwnerID == actor.UserID {
		return nil, domain.NewForbiddenError("you cannot rate your own joke")
	}

	merged := domain.MergeRating(joke.Rating, rating)
	if err := s.repo.UpdateJokeRating(ctx, jokeID, merged); err != nil {
		return nil, err
	}
	balance, err := s.repo.AddJokeBalance(ctx, actor.UserID, 1)
	if err != nil {
		return nil, err
	}
	s.log.Info("joke rated", "user_id", actor.UserID, "joke_id", jokeID, "rating", merged)
	return &RateResult{Rating: merged, JokeBalance: balance}, nil
}

// Edit replaces a joke's body. Only the owner or a moderator may edit;
// the title is immutable after creation and there is no balance effect.
func (s *JokeService) Edit(ctx context.Context, actor domain.Identity, jokeID int64, body string) (*domain.Joke, error) {
	joke, err := s.repo.GetJokeByID(ctx, jokeID)
	if err != nil {
		return nil, err
	}
	if err := requireOwnerOrModerator(actor, joke); err != nil {
		s.log.Warn("joke edit refused", "user_id", actor.UserID, "joke_id", jokeID)
		return nil, err
	}
	if err := domain.ValidateBody(body); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateJokeBody(ctx, jokeID, body); err != nil {
		return nil, err
	}
	joke.Body = body
	s.log.Info("joke updated", "user_id", actor.UserID, "joke_id", jokeID)
	return joke, nil
}

// Delete removes a joke. Only the owner or a moderator may delete;
// removal is unconditional and does not touch any balances.
func (s *JokeService) Delete(ctx context.Context, actor domain.Identity, jokeID int64) error {
	joke, err := s.repo.GetJokeByID(ctx, jokeID)
	if err != nil {
		return err
	}
	if err := requireOwnerOrModerator(actor, joke); err != nil {
		s.log.Warn("joke delete refused", "user_id", actor.UserID, "joke_id", jokeID)
		return err
	}
	if err := s.repo.DeleteJoke(ctx, jokeID); err != nil {
		return err
	}
	s.log.Info("joke deleted", "user_id", actor.UserID, "joke_id", jokeID)
	return nil
}
