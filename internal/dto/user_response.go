package dto

import "github.com/dermengr/Currency/internal/core/domain"

// UserResponse is the public view of a user. The password hash never
// leaves the service layer.
type UserResponse struct {
	UserID   string `json:"userID"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// ToUserResponse converts a domain.User to a UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:   user.UserID,
		Username: user.Username,
		Role:     string(user.Role),
	}
}
