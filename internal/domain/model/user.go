package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role controls access to administrative endpoints.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a registered customer of the marketplace. Money is the
// spendable balance and is mutated only through balance repository operations.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         Role
	Money        decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
