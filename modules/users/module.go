// Package users provides user management functionality.
// This file defines the module's public API - the single interface
// that other modules use to interact with the users bounded context.
package users

import (
	"net/http"

	"github.com/rai/user-service-go/modules/shared/events"
	"github.com/rai/user-service-go/modules/users/application/commands"
	"github.com/rai/user-service-go/modules/users/application/queries"
	"github.com/rai/user-service-go/modules/users/domain"
	httphandler "github.com/rai/user-service-go/modules/users/infrastructure/http"
	"github.com/rai/user-service-go/modules/users/infrastructure/persistence"
)

// Module is the public API for the users bounded context.
// External communication: HTTP API (RegisterRoutes)
type Module interface {
	// RegisterRoutes registers the module's HTTP routes to the given mux.
	RegisterRoutes(mux *http.ServeMux)
}

// Config holds the module configuration.
// Repository and IDGenerator are injectable so tests can use a fresh
// store and deterministic IDs; nil fields fall back to the defaults.
type Config struct {
	Repository     domain.UserRepository
	IDGenerator    domain.IDGenerator
	EventPublisher events.Publisher
}

// module implements the Module interface.
type module struct {
	createUserHandler *commands.CreateUserHandler
	updateUserHandler *commands.UpdateUserHandler
	deleteUserHandler *commands.DeleteUserHandler
	getUserHandler    *queries.GetUserHandler
}

// New creates a new users module with all dependencies wired.
func New(cfg Config) Module {
	repository := cfg.Repository
	if repository == nil {
		repository = persistence.NewInMemoryRepository()
	}

	idGenerator := cfg.IDGenerator
	if idGenerator == nil {
		idGenerator = domain.NewUUIDGenerator()
	}

	// Wire up command handlers
	createUserHandler := commands.NewCreateUserHandler(repository, idGenerator, cfg.EventPublisher)
	updateUserHandler := commands.NewUpdateUserHandler(repository, cfg.EventPublisher)
	deleteUserHandler := commands.NewDeleteUserHandler(repository, cfg.EventPublisher)

	// Wire up query handlers
	getUserHandler := queries.NewGetUserHandler(repository)

	return &module{
		createUserHandler: createUserHandler,
		updateUserHandler: updateUserHandler,
		deleteUserHandler: deleteUserHandler,
		getUserHandler:    getUserHandler,
	}
}

func (m *module) RegisterRoutes(mux *http.ServeMux) {
	httphandler.RegisterRoutes(mux, m.createUserHandler, m.updateUserHandler, m.deleteUserHandler, m.getUserHandler)
}
