package commands

import (
	"context"
	"fmt"

	"github.com/rai/user-service-go/modules/shared/events"
	"github.com/rai/user-service-go/modules/users/domain"
)

// DeleteUserCommand represents the intent to delete a user.
type DeleteUserCommand struct {
	UserID string
}

// DeleteUserHandler handles the DeleteUserCommand.
type DeleteUserHandler struct {
	repo      domain.UserRepository
	publisher events.Publisher
}

func NewDeleteUserHandler(repo domain.UserRepository, publisher events.Publisher) *DeleteUserHandler {
	return &DeleteUserHandler{
		repo:      repo,
		publisher: publisher,
	}
}

// Handle executes the delete user use case.
// The user record is physically removed; its ID is never reused.
func (h *DeleteUserHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	userID := domain.UserIDFrom(cmd.UserID)

	if err := h.repo.RemoveByID(ctx, userID); err != nil {
		return fmt.Errorf("removing user: %w", err)
	}

	// Publish domain event
	if h.publisher != nil {
		event := domain.NewUserDeletedEvent(userID)
		if err := h.publisher.Publish(ctx, event); err != nil {
			_ = err
		}
	}

	return nil
}
