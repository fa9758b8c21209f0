package dto

// LoginRequest is the credentials payload for authentication.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued bearer token and the authenticated user.
type LoginResponse struct {
	Token string          `json:"token"`
	User  UserReadOnlyDTO `json:"user"`
}
