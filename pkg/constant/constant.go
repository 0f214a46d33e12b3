package constant

const (
	RoleAdmin   = "ROLE_ADMIN"
	RoleUser    = "ROLE_USER"
	DefaultRole = RoleUser

	// BearerPrefix is the exact scheme prefix stripped from the
	// Authorization header.
	BearerPrefix = "Bearer "

	DefaultTokenTTLMinutes = 300
)

// Response bodies and failure codes surfaced at the HTTP boundary.
const (
	MsgUserCreated     = "New User Created"
	MsgUserUpdated     = "User Updated Successfully"
	MsgPasswordChanged = "Password Changed Successfully"
	MsgPasswordReset   = "Password Reset Successfully"

	StatusUserDisabled          = "USER_DISABLED"
	StatusInvalidCredentials    = "INVALID_CREDENTIALS"
	StatusInvalidToken          = "INVALID_TOKEN"
	StatusTokenInvalidOrExpired = "TOKEN_INVALID_OR_EXPIRED"
	StatusPasswordNotAMatch     = "PASSWORD_NOT_A_MATCH"
	StatusInvalidSecurityKey    = "INVALID_SECURITY_KEY"
	StatusUserNotFound          = "USER_NOT_FOUND"
	StatusUnauthorizedAccess    = "UNAUTHORIZED_ACCESS"
	StatusUnauthorizedEntry     = "UNAUTHORIZED_ENTRY"
	StatusEmailAlreadyInUse     = "EMAIL_ALREADY_IN_USE"
)
