package dto

// NewUserInput carries the full user record shape for register and
// update-user. On update, empty fields leave the stored value untouched.
type NewUserInput struct {
	Name        string `json:"name"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	SecurityKey string `json:"securityKey"`
	Active      bool   `json:"active"`
}
