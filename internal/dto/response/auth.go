package response

import (
	"time"

	"eventhub/internal/data/entity"
)

type UserResponse struct {
	ID                        string          `json:"id"`
	Email                     string          `json:"email"`
	FullName                  string          `json:"full_name"`
	Role                      entity.UserRole `json:"role"`
	Phone                     *string         `json:"phone,omitempty"`
	Department                *string         `json:"department,omitempty"`
	Bio                       *string         `json:"bio,omitempty"`
	AvatarURL                 *string         `json:"avatar_url,omitempty"`
	BookingConfirmationEmails bool            `json:"booking_confirmation_emails"`
	ThemePreference           string          `json:"theme_preference"`
	CreatedAt                 time.Time       `json:"created_at"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:                        user.ID.String(),
		Email:                     user.Email,
		FullName:                  user.FullName,
		Role:                      user.Role,
		Phone:                     user.Phone,
		Department:                user.Department,
		Bio:                       user.Bio,
		AvatarURL:                 user.AvatarURL,
		BookingConfirmationEmails: user.BookingConfirmationEmails,
		ThemePreference:           user.ThemePreference,
		CreatedAt:                 user.CreatedAt,
	}
}

func UsersToResponse(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, UserToResponse(user))
	}
	return out
}
