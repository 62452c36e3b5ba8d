package repository

import (
	"context"

	"github.com/minhdn/gameshop/internal/domain/model"
)

// CategoryRepository describes persistence operations for game categories.
type CategoryRepository interface {
	Create(ctx context.Context, name, imageURL string) (*model.GameCategory, error)
	GetByID(ctx context.Context, id int64) (*model.GameCategory, error)
	List(ctx context.Context) ([]model.GameCategory, error)
	Update(ctx context.Context, category model.GameCategory) error
	Delete(ctx context.Context, id int64) error
}
