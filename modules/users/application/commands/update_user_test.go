package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rai/user-service-go/modules/shared/events"
	"github.com/rai/user-service-go/modules/users/application/commands"
	"github.com/rai/user-service-go/modules/users/domain"
)

func TestUpdateUserHandler_Handle_Success(t *testing.T) {
	// Arrange
	var replacedID domain.UserID
	var replacedProfile domain.Profile
	var publishedEvent events.Event

	repo := &mockUserRepository{
		replaceFn: func(ctx context.Context, id domain.UserID, profile domain.Profile) (*domain.User, error) {
			replacedID = id
			replacedProfile = profile
			return domain.NewUser(id, profile), nil
		},
	}

	publisher := &mockPublisher{
		publishFn: func(ctx context.Context, event events.Event) error {
			publishedEvent = event
			return nil
		},
	}

	handler := commands.NewUpdateUserHandler(repo, publisher)

	// Act
	user, err := handler.Handle(context.Background(), commands.UpdateUserCommand{
		UserID: "user-1",
		Name:   "Ada L.",
		Email:  "ada@x.com",
	})

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if replacedID.String() != "user-1" {
		t.Errorf("expected replace on 'user-1', got %q", replacedID)
	}
	if replacedProfile.Name() != "Ada L." {
		t.Errorf("expected replacement name 'Ada L.', got %q", replacedProfile.Name())
	}
	if user.ID().String() != "user-1" {
		t.Errorf("expected ID preserved, got %q", user.ID())
	}

	updated, ok := publishedEvent.(domain.UserUpdatedEvent)
	if !ok {
		t.Fatalf("expected UserUpdatedEvent, got %T", publishedEvent)
	}
	if updated.Name != "Ada L." {
		t.Errorf("expected event name 'Ada L.', got %q", updated.Name)
	}
}

func TestUpdateUserHandler_Handle_ValidationBeforeExistence(t *testing.T) {
	// The repository must not be consulted for an invalid body, even
	// when the target ID does not exist: the caller sees 400, not 404.
	repo := &mockUserRepository{
		replaceFn: func(ctx context.Context, id domain.UserID, profile domain.Profile) (*domain.User, error) {
			t.Fatal("Replace should not be called for invalid input")
			return nil, nil
		},
	}

	handler := commands.NewUpdateUserHandler(repo, nil)

	_, err := handler.Handle(context.Background(), commands.UpdateUserCommand{
		UserID: "no-such-user",
		Name:   "",
		Email:  "",
	})

	if !errors.Is(err, domain.ErrFieldsRequired) {
		t.Fatalf("expected ErrFieldsRequired, got %v", err)
	}
}

func TestUpdateUserHandler_Handle_UserNotFound(t *testing.T) {
	repo := &mockUserRepository{
		replaceFn: func(ctx context.Context, id domain.UserID, profile domain.Profile) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}

	publisher := &mockPublisher{
		publishFn: func(ctx context.Context, event events.Event) error {
			t.Fatal("Publish should not be called when user is not found")
			return nil
		},
	}

	handler := commands.NewUpdateUserHandler(repo, publisher)

	_, err := handler.Handle(context.Background(), commands.UpdateUserCommand{
		UserID: "no-such-user",
		Name:   "Ada",
		Email:  "ada@x.com",
	})

	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
