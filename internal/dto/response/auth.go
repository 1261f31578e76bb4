package response

import (
	"time"

	"recipe-sharing/internal/data/entity"
)

// AuthResponse adalah hasil sukses dari login: stateless token + identity
type AuthResponse struct {
	Token    string          `json:"token"`
	Username string          `json:"username"`
	Fullname string          `json:"fullname"`
	Role     entity.UserRole `json:"role"`
}

type UserResponse struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Role      entity.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

func AuthToResponse(user *entity.User, token string) AuthResponse {
	return AuthResponse{
		Token:    token,
		Username: user.Username,
		Fullname: user.FullName(),
		Role:     user.Role,
	}
}
