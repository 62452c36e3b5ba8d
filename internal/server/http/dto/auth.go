package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterRequest describes email/password payload.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest carries old and new passwords.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// UpdateUserRequest carries the full administrative profile rewrite.
type UpdateUserRequest struct {
	Email string          `json:"email"`
	Role  string          `json:"role"`
	Money decimal.Decimal `json:"money"`
}

// UserResponse is the public projection of a user.
type UserResponse struct {
	ID        int64           `json:"id"`
	Email     string          `json:"email"`
	Role      string          `json:"role"`
	Money     decimal.Decimal `json:"money"`
	CreatedAt time.Time       `json:"created_at"`
}

// AuthResponse returns the issued token together with the user profile.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
