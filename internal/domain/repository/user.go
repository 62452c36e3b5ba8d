package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/minhdn/gameshop/internal/domain/model"
)

// UsersFilter narrows the administrative user listing.
type UsersFilter struct {
	Role   model.Role
	Search string
	Page   int
	Limit  int
}

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash string, role model.Role) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Update(ctx context.Context, id int64, email string, role model.Role, money decimal.Decimal) (*model.User, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter UsersFilter) ([]model.User, int64, error)
}
