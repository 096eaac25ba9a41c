package request

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=2,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	FullName                  *string `json:"full_name,omitempty" validate:"omitempty,min=2,max=100"`
	Phone                     *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Department                *string `json:"department,omitempty" validate:"omitempty,max=100"`
	Bio                       *string `json:"bio,omitempty" validate:"omitempty,max=500"`
	AvatarURL                 *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
	BookingConfirmationEmails *bool   `json:"booking_confirmation_emails,omitempty"`
	ThemePreference           *string `json:"theme_preference,omitempty" validate:"omitempty,oneof=light dark system"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}
