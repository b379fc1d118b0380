package dto

// RegisterRequest carries the credentials for a new account. A role may be
// supplied but is ignored; registration always produces a regular user.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=user admin"`
}

// LoginRequest carries the credentials for an existing account.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by register and login: the authenticated user
// plus a signed bearer token.
type AuthResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

// ProfileResponse is returned by the profile endpoint.
type ProfileResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}
