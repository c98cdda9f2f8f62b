package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rai/user-service-go/modules/shared/events"
	"github.com/rai/user-service-go/modules/users/application/commands"
	"github.com/rai/user-service-go/modules/users/domain"
)

func TestDeleteUserHandler_Handle_Success(t *testing.T) {
	// Arrange
	var removedID domain.UserID
	var publishedEvent events.Event

	repo := &mockUserRepository{
		removeByIDFn: func(ctx context.Context, id domain.UserID) error {
			removedID = id
			return nil
		},
	}

	publisher := &mockPublisher{
		publishFn: func(ctx context.Context, event events.Event) error {
			publishedEvent = event
			return nil
		},
	}

	handler := commands.NewDeleteUserHandler(repo, publisher)

	// Act
	err := handler.Handle(context.Background(), commands.DeleteUserCommand{
		UserID: "user-1",
	})

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if removedID.String() != "user-1" {
		t.Errorf("expected removal of 'user-1', got %q", removedID)
	}

	deleted, ok := publishedEvent.(domain.UserDeletedEvent)
	if !ok {
		t.Fatalf("expected UserDeletedEvent, got %T", publishedEvent)
	}
	if deleted.UserID != "user-1" {
		t.Errorf("expected event user_id 'user-1', got %q", deleted.UserID)
	}
}

func TestDeleteUserHandler_Handle_UserNotFound(t *testing.T) {
	repo := &mockUserRepository{
		removeByIDFn: func(ctx context.Context, id domain.UserID) error {
			return domain.ErrUserNotFound
		},
	}

	publisher := &mockPublisher{
		publishFn: func(ctx context.Context, event events.Event) error {
			t.Fatal("Publish should not be called when user is not found")
			return nil
		},
	}

	handler := commands.NewDeleteUserHandler(repo, publisher)

	err := handler.Handle(context.Background(), commands.DeleteUserCommand{
		UserID: "no-such-user",
	})

	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
