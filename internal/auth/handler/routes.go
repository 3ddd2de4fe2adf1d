package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Post("/api/v1/register", h.Register)
	app.Post("/api/v1/login", h.Login)
	app.Post("/api/v1/refresh", h.Refresh)
	app.Delete("/api/v1/session", h.Logout)

	// Everything below needs a live, non-revoked access token.
	me := app.Group("/api/v1", h.RequireAuth)
	me.Post("/2fa/setup", h.SetupTwoFactor)
	me.Post("/2fa/verify", h.VerifyTwoFactor)
	me.Delete("/2fa", h.DisableTwoFactor)
	me.Put("/password", h.ChangePassword)
	me.Post("/token/revoke", h.RevokeToken)
}
