// Package commands contains write use cases for the users module.
// Commands change state and typically don't return data (except the
// affected user).
package commands

import (
	"context"
	"fmt"

	"github.com/rai/user-service-go/modules/shared/events"
	"github.com/rai/user-service-go/modules/users/domain"
)

// CreateUserCommand represents the intent to create a new user.
type CreateUserCommand struct {
	Name  string
	Email string
}

// CreateUserHandler handles the CreateUserCommand.
type CreateUserHandler struct {
	repo      domain.UserRepository
	idgen     domain.IDGenerator
	publisher events.Publisher
}

func NewCreateUserHandler(repo domain.UserRepository, idgen domain.IDGenerator, publisher events.Publisher) *CreateUserHandler {
	return &CreateUserHandler{
		repo:      repo,
		idgen:     idgen,
		publisher: publisher,
	}
}

// Handle executes the create user use case.
// Duplicate emails across distinct users are permitted, so no
// uniqueness check is made.
func (h *CreateUserHandler) Handle(ctx context.Context, cmd CreateUserCommand) (*domain.User, error) {
	// Validate and create the profile value object
	profile, err := domain.NewProfile(cmd.Name, cmd.Email)
	if err != nil {
		return nil, err
	}

	// Create the user aggregate with a freshly generated ID
	user := domain.NewUser(h.idgen.NewID(), profile)

	// Persist the user
	if err := h.repo.Add(ctx, user); err != nil {
		return nil, fmt.Errorf("adding user: %w", err)
	}

	// Publish domain event
	if h.publisher != nil {
		event := domain.NewUserCreatedEvent(user)
		if err := h.publisher.Publish(ctx, event); err != nil {
			// Log but don't fail - the user is already stored
			_ = err
		}
	}

	return user, nil
}
