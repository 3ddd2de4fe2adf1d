package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/greenledger/auth-service/internal/auth/dto"
	"github.com/greenledger/auth-service/internal/auth/service"
	autherror "github.com/greenledger/auth-service/internal/errors"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	out, err := h.authService.Register(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	out, err := h.authService.Login(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	out, err := h.authService.Refresh(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

// Logout always answers 204; the service logs and swallows its own
// failures.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var input dto.RefreshInput
	_ = c.BodyParser(&input)
	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	h.authService.Logout(c.Context(), input)

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) SetupTwoFactor(c *fiber.Ctx) error {
	out, err := h.authService.SetupTwoFactor(c.Context(), subjectFromCtx(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) VerifyTwoFactor(c *fiber.Ctx) error {
	var input dto.TwoFactorVerifyInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	if err := h.authService.VerifyAndEnableTwoFactor(c.Context(), subjectFromCtx(c), input); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) DisableTwoFactor(c *fiber.Ctx) error {
	var input dto.TwoFactorDisableInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	if err := h.authService.DisableTwoFactor(c.Context(), subjectFromCtx(c), input); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var input dto.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	if err := h.authService.ChangePassword(c.Context(), subjectFromCtx(c), input); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// RevokeToken blacklists the access token the caller presented.
func (h *AuthHandler) RevokeToken(c *fiber.Ctx) error {
	claims, ok := c.Locals(claimsKey).(*service.AccessClaims)
	if !ok || claims.ExpiresAt == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": autherror.ErrTokenInvalid.Error()})
	}

	input := dto.RevokeTokenInput{
		UserID:    claims.Subject,
		JTI:       claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
		IPAddress: c.IP(),
		UserAgent: string(c.Request().Header.UserAgent()),
	}
	if err := h.authService.RevokeAccessToken(c.Context(), input); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

const claimsKey = "accessClaims"

// RequireAuth verifies the bearer token, including the revocation check,
// and stashes the claims for downstream handlers.
func (h *AuthHandler) RequireAuth(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": autherror.ErrTokenInvalid.Error()})
	}

	claims, err := h.authService.VerifyAccessToken(c.Context(), token)
	if err != nil {
		return respondError(c, err)
	}

	c.Locals(claimsKey, claims)

	return c.Next()
}

func subjectFromCtx(c *fiber.Ctx) string {
	if claims, ok := c.Locals(claimsKey).(*service.AccessClaims); ok {
		return claims.Subject
	}
	return ""
}

// respondError maps the error taxonomy onto transport statuses. Unknown
// errors surface as an opaque 500 so internal causes never leak.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, autherror.ErrTwoFactorRequired):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": err.Error(),
			"code":  "two_factor_required",
		})
	case errors.Is(err, autherror.ErrInvalidCredentials),
		errors.Is(err, autherror.ErrInvalidTwoFactorCode),
		errors.Is(err, autherror.ErrTokenInvalid),
		errors.Is(err, autherror.ErrTokenExpired):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, autherror.ErrDuplicateEmail),
		errors.Is(err, autherror.ErrTwoFactorAlreadyEnabled):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, autherror.ErrTwoFactorSetupExpired):
		return c.Status(fiber.StatusGone).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}
