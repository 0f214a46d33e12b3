package dto

// ValidationResult is built fresh for every validate call. It must never be
// shared between requests.
type ValidationResult struct {
	ValidStatus bool   `json:"validStatus"`
	UserRole    string `json:"userRole"`
	Email       string `json:"email"`
}
