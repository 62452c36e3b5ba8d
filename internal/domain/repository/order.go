package repository

import (
	"context"
	"time"

	"github.com/minhdn/gameshop/internal/domain/model"
)

// OrdersFilter narrows order history listings.
type OrdersFilter struct {
	UserID        int64
	GameAccountID int64
	Page          int
	Limit         int
}

// OrderRepository describes the order journal. Orders are append-only: they
// are created solely by Purchase and never updated or deleted.
type OrderRepository interface {
	// Purchase settles one purchase attempt atomically: it locks the listing
	// row, validates availability, locks the buyer row, conditionally debits
	// the price, marks the listing sold and appends the order. On any failure
	// no effect is observable. Concurrency faults map to the conflict error.
	Purchase(ctx context.Context, buyerID, gameAccountID int64) (*model.Order, error)

	GetByID(ctx context.Context, id int64) (*model.Order, error)
	List(ctx context.Context, filter OrdersFilter) ([]model.Order, int64, error)
	RecentSince(ctx context.Context, since time.Time) ([]model.BannerEntry, error)
}
