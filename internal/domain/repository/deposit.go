package repository

import (
	"context"

	"github.com/minhdn/gameshop/internal/domain/model"
)

// DepositsFilter narrows deposit request listings.
type DepositsFilter struct {
	UserID int64
	Status model.DepositStatus
	Page   int
	Limit  int
}

// DepositRepository describes persistence operations for top-up requests.
type DepositRepository interface {
	Create(ctx context.Context, userID int64, description, imageURL string) (*model.DepositRequest, error)
	GetByID(ctx context.Context, id int64) (*model.DepositRequest, error)
	List(ctx context.Context, filter DepositsFilter) ([]model.DepositRequest, int64, error)
	UpdateStatus(ctx context.Context, id int64, status model.DepositStatus) error
	Delete(ctx context.Context, id int64) error
}
