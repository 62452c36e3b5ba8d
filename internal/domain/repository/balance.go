package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// BalanceRepository manages the spendable balance of a user. The debit side
// lives inside the purchase transaction; only reads and credits are exposed.
type BalanceRepository interface {
	Get(ctx context.Context, userID int64) (decimal.Decimal, error)

	// Credit unconditionally increases the balance. Used by the top-up path
	// after an administrator approves a deposit request.
	Credit(ctx context.Context, userID int64, amount decimal.Decimal) error
}
