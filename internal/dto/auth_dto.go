package dto

// LoginRequest carries the admin password for verification.
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the bearer token minted for an admin session.
type LoginResponse struct {
	Token string `json:"token"`
}

// SessionResponse reports whether the presented token is still a live admin session.
type SessionResponse struct {
	Authenticated bool `json:"authenticated"`
}
