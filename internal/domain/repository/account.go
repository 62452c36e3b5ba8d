package repository

import (
	"context"

	"github.com/minhdn/gameshop/internal/domain/model"
)

// AccountsFilter narrows the listing catalog.
type AccountsFilter struct {
	CategoryID int64
	Status     model.AccountStatus
	Type       model.AccountType
	Page       int
	Limit      int
}

// AccountRepository describes persistence operations for game-account
// listings. Purchase-time state transitions are not here: only the purchase
// transaction may move a listing from available to sold.
type AccountRepository interface {
	Create(ctx context.Context, account model.GameAccount) (*model.GameAccount, error)
	GetByID(ctx context.Context, id int64) (*model.GameAccount, error)
	List(ctx context.Context, filter AccountsFilter) ([]model.GameAccount, int64, error)
	Update(ctx context.Context, account model.GameAccount) error
	Delete(ctx context.Context, id int64) error
}
