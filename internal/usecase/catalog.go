package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/minhdn/gameshop/internal/domain/errors"
	"github.com/minhdn/gameshop/internal/domain/model"
	"github.com/minhdn/gameshop/internal/domain/repository"
)

// CatalogUseCase manages game categories and the listing catalog.
type CatalogUseCase struct {
	categories repository.CategoryRepository
	accounts   repository.AccountRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(categories repository.CategoryRepository, accounts repository.AccountRepository) *CatalogUseCase {
	return &CatalogUseCase{categories: categories, accounts: accounts}
}

// Categories returns all game categories.
func (u *CatalogUseCase) Categories(ctx context.Context) ([]model.GameCategory, error) {
	return u.categories.List(ctx)
}

// Category fetches one category.
func (u *CatalogUseCase) Category(ctx context.Context, id int64) (*model.GameCategory, error) {
	if id <= 0 {
		return nil, domainErrors.ErrNotFound
	}
	return u.categories.GetByID(ctx, id)
}

// CreateCategory adds a new game title.
func (u *CatalogUseCase) CreateCategory(ctx context.Context, name, imageURL string) (*model.GameCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainErrors.ErrInvalidInput
	}
	return u.categories.Create(ctx, name, imageURL)
}

// UpdateCategory renames a category or replaces its artwork.
func (u *CatalogUseCase) UpdateCategory(ctx context.Context, category model.GameCategory) error {
	if category.ID <= 0 {
		return domainErrors.ErrNotFound
	}
	if strings.TrimSpace(category.Name) == "" {
		return domainErrors.ErrInvalidInput
	}
	return u.categories.Update(ctx, category)
}

// DeleteCategory removes a category without listings.
func (u *CatalogUseCase) DeleteCategory(ctx context.Context, id int64) error {
	if id <= 0 {
		return domainErrors.ErrNotFound
	}
	return u.categories.Delete(ctx, id)
}

// Listings returns a catalog page.
func (u *CatalogUseCase) Listings(ctx context.Context, filter repository.AccountsFilter) ([]model.GameAccount, int64, error) {
	return u.accounts.List(ctx, filter)
}

// Listing fetches one listing with its category name.
func (u *CatalogUseCase) Listing(ctx context.Context, id int64) (*model.GameAccount, error) {
	if id <= 0 {
		return nil, domainErrors.ErrNotFound
	}
	return u.accounts.GetByID(ctx, id)
}

// CreateListing publishes a new game account for sale.
func (u *CatalogUseCase) CreateListing(ctx context.Context, account model.GameAccount) (*model.GameAccount, error) {
	if account.CategoryID <= 0 {
		return nil, domainErrors.ErrNotFound
	}
	if account.CurrentPrice.IsNegative() || account.OriginalPrice.IsNegative() {
		return nil, domainErrors.ErrInvalidAmount
	}
	if account.Status == "" {
		account.Status = model.AccountStatusAvailable
	}
	if account.Type == "" {
		account.Type = model.AccountTypeNormal
	}
	return u.accounts.Create(ctx, account)
}

// UpdateListing edits an unsold listing.
func (u *CatalogUseCase) UpdateListing(ctx context.Context, account model.GameAccount) error {
	if account.ID <= 0 || account.CategoryID <= 0 {
		return domainErrors.ErrNotFound
	}
	if account.CurrentPrice.IsNegative() || account.OriginalPrice.IsNegative() {
		return domainErrors.ErrInvalidAmount
	}
	if account.Status == model.AccountStatusSold {
		return domainErrors.ErrNotAvailable
	}
	return u.accounts.Update(ctx, account)
}

// DeleteListing withdraws an unsold listing from the catalog.
func (u *CatalogUseCase) DeleteListing(ctx context.Context, id int64) error {
	if id <= 0 {
		return domainErrors.ErrNotFound
	}
	return u.accounts.Delete(ctx, id)
}
