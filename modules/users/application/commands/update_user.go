package commands

import (
	"context"
	"fmt"

	"github.com/rai/user-service-go/modules/shared/events"
	"github.com/rai/user-service-go/modules/users/domain"
)

// UpdateUserCommand represents the intent to overwrite a user's profile.
type UpdateUserCommand struct {
	UserID string
	Name   string
	Email  string
}

// UpdateUserHandler handles the UpdateUserCommand.
type UpdateUserHandler struct {
	repo      domain.UserRepository
	publisher events.Publisher
}

func NewUpdateUserHandler(repo domain.UserRepository, publisher events.Publisher) *UpdateUserHandler {
	return &UpdateUserHandler{
		repo:      repo,
		publisher: publisher,
	}
}

// Handle executes the update user use case.
// Field validation runs before the existence lookup: an invalid body
// against an unknown ID reports the validation failure, not not-found.
// Applying the same update twice yields the same final state.
func (h *UpdateUserHandler) Handle(ctx context.Context, cmd UpdateUserCommand) (*domain.User, error) {
	// Validate and create the profile value object
	profile, err := domain.NewProfile(cmd.Name, cmd.Email)
	if err != nil {
		return nil, err
	}

	// Overwrite name and email in place, preserving the ID
	user, err := h.repo.Replace(ctx, domain.UserIDFrom(cmd.UserID), profile)
	if err != nil {
		return nil, fmt.Errorf("replacing user: %w", err)
	}

	// Publish domain event
	if h.publisher != nil {
		event := domain.NewUserUpdatedEvent(user)
		if err := h.publisher.Publish(ctx, event); err != nil {
			_ = err
		}
	}

	return user, nil
}
