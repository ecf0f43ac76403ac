package models

// UserSession represents an authenticated user session
type UserSession struct {
	UserID    string `json:"user_id"` // Deterministic UUID derived from the email
	Email     string `json:"email"`
	Name      string `json:"name"` // Display name (email local part)
	ExpiresAt int64  `json:"exp"`
	IssuedAt  int64  `json:"iat"`
}

// LoginRequest is the payload for signing in with a college email
type LoginRequest struct {
	Email string `json:"email" binding:"required,email,max=255"`
}

// LoginResponse is returned after a login attempt
type LoginResponse struct {
	Success        bool         `json:"success"`
	User           *UserSession `json:"user,omitempty"`
	View           ViewState    `json:"view,omitempty"`
	Error          string       `json:"error,omitempty"`
	AllowedDomains []string     `json:"allowedDomains,omitempty"`
}

// LogoutResponse is returned after logout
type LogoutResponse struct {
	Success bool `json:"success"`
}
