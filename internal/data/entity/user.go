package entity

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	Base
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	FullName     string   `db:"full_name"`
	Role         UserRole `db:"role"`
	Phone        *string  `db:"phone"`
	Department   *string  `db:"department"`
	Bio          *string  `db:"bio"`
	AvatarURL    *string  `db:"avatar_url"`

	// BookingConfirmationEmails opts the user in to confirmation mail
	// on successful bookings and registrations.
	BookingConfirmationEmails bool   `db:"booking_confirmation_emails"`
	ThemePreference           string `db:"theme_preference"`
}
