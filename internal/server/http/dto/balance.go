package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceResponse reports the spendable balance.
type BalanceResponse struct {
	Money decimal.Decimal `json:"money"`
}

// DepositResponse is the projection of a top-up request.
type DepositResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	UserEmail   string    `json:"user_email,omitempty"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReviewDepositRequest approves or rejects a pending request.
type ReviewDepositRequest struct {
	Approve bool `json:"approve"`
}

// AddMoneyRequest credits a user balance.
type AddMoneyRequest struct {
	Amount decimal.Decimal `json:"amount"`
}
