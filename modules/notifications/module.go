// Package notifications observes user lifecycle events and records them.
package notifications

import (
	"log/slog"

	"github.com/rai/user-service-go/modules/notifications/application/eventhandlers"
	"github.com/rai/user-service-go/modules/shared/events"
	usersdomain "github.com/rai/user-service-go/modules/users/domain"
)

// Module represents the notifications module entry point.
type Module struct{}

type Config struct {
	EventSubscriber events.Subscriber
	Logger          *slog.Logger
}

// New initializes the notifications module and subscribes to events.
func New(cfg Config) *Module {
	logger := cfg.Logger.With("module", "notifications")

	// Initialize event handlers
	activityHandler := eventhandlers.NewUserActivityHandler(logger)

	// Subscribe to events
	for _, eventType := range []string{
		usersdomain.UserCreatedEventType,
		usersdomain.UserUpdatedEventType,
		usersdomain.UserDeletedEventType,
	} {
		if err := cfg.EventSubscriber.Subscribe(eventType, activityHandler); err != nil {
			logger.Error("failed to subscribe to user event", slog.String("event_type", eventType), slog.Any("error", err))
		}
	}

	return &Module{}
}
