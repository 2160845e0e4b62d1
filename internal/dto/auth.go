package dto

// RegisterRequest creates a new user with username/password credentials.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by a successful registration or login.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
