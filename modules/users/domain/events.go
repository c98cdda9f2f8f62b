package domain

import (
	"github.com/rai/user-service-go/modules/shared/events"
)

// Domain events for the users bounded context.
// Events represent facts about what happened in the domain.

const (
	UserCreatedEventType = "users.UserCreated"
	UserUpdatedEventType = "users.UserUpdated"
	UserDeletedEventType = "users.UserDeleted"
)

// UserCreatedEvent is published when a new user is created.
type UserCreatedEvent struct {
	events.BaseEvent
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

func NewUserCreatedEvent(user *User) UserCreatedEvent {
	return UserCreatedEvent{
		BaseEvent: events.NewBaseEvent(UserCreatedEventType, user.ID().String()),
		UserID:    user.ID().String(),
		Name:      user.Name(),
		Email:     user.Email(),
	}
}

// UserUpdatedEvent is published when a user's profile is overwritten.
type UserUpdatedEvent struct {
	events.BaseEvent
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

func NewUserUpdatedEvent(user *User) UserUpdatedEvent {
	return UserUpdatedEvent{
		BaseEvent: events.NewBaseEvent(UserUpdatedEventType, user.ID().String()),
		UserID:    user.ID().String(),
		Name:      user.Name(),
		Email:     user.Email(),
	}
}

// UserDeletedEvent is published when a user is removed.
type UserDeletedEvent struct {
	events.BaseEvent
	UserID string `json:"user_id"`
}

func NewUserDeletedEvent(userID UserID) UserDeletedEvent {
	return UserDeletedEvent{
		BaseEvent: events.NewBaseEvent(UserDeletedEventType, userID.String()),
		UserID:    userID.String(),
	}
}
