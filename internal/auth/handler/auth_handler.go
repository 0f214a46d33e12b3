package handler

import (
	"errors"
	"log/slog"

	"github.com/triquetrx/auth-microservice-sbm/internal/auth/domain"
	"github.com/triquetrx/auth-microservice-sbm/internal/auth/dto"
	"github.com/triquetrx/auth-microservice-sbm/internal/auth/service"
	autherror "github.com/triquetrx/auth-microservice-sbm/internal/errors"
	"github.com/triquetrx/auth-microservice-sbm/pkg/constant"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	userService    *service.UserService
	sessionService *service.SessionService
	validate       *validator.Validate
	logger         *slog.Logger
}

func NewAuthHandler(userService *service.UserService, sessionService *service.SessionService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		userService:    userService,
		sessionService: sessionService,
		validate:       validator.New(),
		logger:         logger,
	}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.AuthenticationRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	response, err := h.userService.Login(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, autherror.ErrAccountDisabled):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": constant.StatusUserDisabled,
			})
		case errors.Is(err, autherror.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": constant.StatusInvalidCredentials,
			})
		default:
			h.logger.Error("login failed", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "internal server error",
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

func (h *AuthHandler) Validate(c *fiber.Ctx) error {
	result, err := h.sessionService.ValidateSession(c.Context(), c.Get(fiber.HeaderAuthorization))
	if err != nil {
		if errors.Is(err, autherror.ErrTokenInvalidOrExpired) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": constant.StatusTokenInvalidOrExpired,
			})
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": constant.StatusInvalidToken,
		})
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.NewUserInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if _, err := h.userService.Register(c.Context(), input); err != nil {
		if errors.Is(err, autherror.ErrEmailAlreadyInUse) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": constant.StatusEmailAlreadyInUse,
			})
		}
		h.logger.Error("register failed", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unable to create user",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": constant.MsgUserCreated,
	})
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	identity, ok := h.requireSession(c)
	if !ok {
		return nil
	}

	var input dto.PasswordChangeInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	result, err := h.userService.ChangePassword(c.Context(), identity.Email, input.OldPassword, input.NewPassword)
	if err != nil {
		if errors.Is(err, autherror.ErrPasswordNotAMatch) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": constant.StatusPasswordNotAMatch,
			})
		}
		h.logger.Error("change password failed", "error", err)
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": constant.StatusUnauthorizedEntry,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": result,
	})
}

func (h *AuthHandler) CheckPassword(c *fiber.Ctx) error {
	identity, ok := h.requireSession(c)
	if !ok {
		return nil
	}

	var input dto.ConfirmPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	match, err := h.userService.CheckPassword(c.Context(), identity.Email, input.Password)
	if err != nil {
		h.logger.Error("check password failed", "error", err)
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": constant.StatusUnauthorizedEntry,
		})
	}

	return c.Status(fiber.StatusOK).JSON(match)
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var input dto.ForgotPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	result, err := h.userService.ForgotPassword(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, autherror.ErrInvalidSecurityKey):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": constant.StatusInvalidSecurityKey,
			})
		case errors.Is(err, autherror.ErrUserNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": constant.StatusUserNotFound,
			})
		default:
			h.logger.Error("forgot password failed", "error", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "unable to reset password",
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": result,
	})
}

func (h *AuthHandler) UpdateUser(c *fiber.Ctx) error {
	identity, tokenString, err := h.sessionService.Resolve(c.Context(), c.Get(fiber.HeaderAuthorization))
	if err != nil || !h.sessionService.CheckCurrent(tokenString, identity) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": constant.StatusUnauthorizedAccess,
		})
	}

	var input dto.NewUserInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	result, err := h.userService.UpdateUser(c.Context(), identity, input)
	if err != nil {
		h.logger.Error("update user failed", "error", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": constant.StatusUnauthorizedAccess,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": result,
	})
}

// requireSession gates the password-lifecycle endpoints. It writes the
// failure response itself and reports whether the caller may proceed.
func (h *AuthHandler) requireSession(c *fiber.Ctx) (*domain.Identity, bool) {
	identity, tokenString, err := h.sessionService.Resolve(c.Context(), c.Get(fiber.HeaderAuthorization))
	if err != nil {
		_ = c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": constant.StatusUnauthorizedEntry,
		})
		return nil, false
	}

	if !h.sessionService.CheckCurrent(tokenString, identity) {
		_ = c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": constant.StatusUnauthorizedAccess,
		})
		return nil, false
	}

	return identity, true
}
