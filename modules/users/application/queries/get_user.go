// Package queries contains read use cases for the users module.
// Queries return data and don't change state (CQRS pattern).
package queries

import (
	"context"

	"github.com/rai/user-service-go/modules/users/domain"
)

// UserDTO is a read model for user data.
// DTOs are optimized for reading and decoupled from domain entities.
type UserDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewUserDTO maps a domain user to its read model.
func NewUserDTO(user *domain.User) *UserDTO {
	return &UserDTO{
		ID:    user.ID().String(),
		Name:  user.Name(),
		Email: user.Email(),
	}
}

// GetUserQuery represents a request to get a user by ID.
type GetUserQuery struct {
	UserID string
}

// GetUserHandler handles GetUserQuery.
type GetUserHandler struct {
	repo domain.UserRepository
}

func NewGetUserHandler(repo domain.UserRepository) *GetUserHandler {
	return &GetUserHandler{repo: repo}
}

// Handle executes the get user query.
func (h *GetUserHandler) Handle(ctx context.Context, query GetUserQuery) (*UserDTO, error) {
	user, err := h.repo.FindByID(ctx, domain.UserIDFrom(query.UserID))
	if err != nil {
		return nil, err
	}

	return NewUserDTO(user), nil
}
