package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bistro-service/internal/api/dto"
	"github.com/spec-kit/bistro-service/internal/auth"
	"github.com/spec-kit/bistro-service/internal/domain"
	"github.com/spec-kit/bistro-service/internal/service"
	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

// UsersHandler exposes user directory endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users *service.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// Register handles POST /users. Registration is idempotent on email.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, created, err := h.users.Register(c.UserContext(), req.Name, req.Email)
	if err != nil {
		return err
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.Status(status).JSON(toUserResponse(user))
}

// List handles GET /users (admin only).
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.UserContext())
	if err != nil {
		return err
	}

	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return c.JSON(out)
}

// AdminCheck handles GET /users/admin-check/:email.
func (h *UsersHandler) AdminCheck(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("missing identity")
	}

	isAdmin, err := h.users.IsAdmin(c.UserContext(), identity, c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(dto.AdminCheckResponse{Admin: isAdmin})
}

// Promote handles PATCH /users/admin/:id (admin only).
func (h *UsersHandler) Promote(c *fiber.Ctx) error {
	if err := h.users.Promote(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Delete handles DELETE /users/:id (admin only).
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	if err := h.users.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func toUserResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}
}
