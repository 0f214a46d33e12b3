package dto

type PasswordChangeInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

type ConfirmPasswordInput struct {
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordInput struct {
	Email       string `json:"email" validate:"required,email"`
	SecurityKey string `json:"securityKey" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}
