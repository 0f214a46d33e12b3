package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Post("/authenticate", h.Login)
	app.Get("/validate", h.Validate)
	app.Post("/register", h.Register)
	app.Post("/change-password", h.ChangePassword)
	app.Post("/check-password", h.CheckPassword)
	app.Put("/forgot-password", h.ForgotPassword)
	app.Put("/update-user", h.UpdateUser)
}
