package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bistro-service/internal/api/dto"
	"github.com/spec-kit/bistro-service/internal/service"
	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

// SessionHandler exposes credential issuance.
type SessionHandler struct {
	sessions *service.SessionService
}

// NewSessionHandler constructs handler.
func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Issue handles POST /session-token.
func (h *SessionHandler) Issue(c *fiber.Ctx) error {
	var req dto.SessionTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	token, exp, err := h.sessions.IssueToken(c.UserContext(), req.Email)
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(dto.SessionTokenResponse{Token: token, ExpiresAt: exp})
}
