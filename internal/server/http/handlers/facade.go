package handlers

import (
	"context"
	"io"

	"github.com/shopspring/decimal"

	"github.com/minhdn/gameshop/internal/domain/model"
	"github.com/minhdn/gameshop/internal/domain/repository"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error
	ParseToken(token string) (int64, model.Role, error)
	Profile(ctx context.Context, userID int64) (*model.User, error)
	Users(ctx context.Context, filter repository.UsersFilter) ([]model.User, int64, error)
	UpdateUser(ctx context.Context, userID int64, email string, role model.Role, money decimal.Decimal) (*model.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// CatalogFacade encapsulates category and listing operations exposed via HTTP.
type CatalogFacade interface {
	Categories(ctx context.Context) ([]model.GameCategory, error)
	Category(ctx context.Context, id int64) (*model.GameCategory, error)
	CreateCategory(ctx context.Context, name, imageURL string) (*model.GameCategory, error)
	UpdateCategory(ctx context.Context, category model.GameCategory) error
	DeleteCategory(ctx context.Context, id int64) error

	Listings(ctx context.Context, filter repository.AccountsFilter) ([]model.GameAccount, int64, error)
	Listing(ctx context.Context, id int64) (*model.GameAccount, error)
	CreateListing(ctx context.Context, account model.GameAccount) (*model.GameAccount, error)
	UpdateListing(ctx context.Context, account model.GameAccount) error
	DeleteListing(ctx context.Context, id int64) error
}

// OrderFacade encapsulates purchase and order history operations.
type OrderFacade interface {
	Purchase(ctx context.Context, buyerID, gameAccountID int64) (*model.Order, error)
	MyOrders(ctx context.Context, userID int64, page, limit int) ([]model.Order, int64, error)
	Order(ctx context.Context, requesterID int64, role model.Role, orderID int64) (*model.Order, error)
	AllOrders(ctx context.Context, filter repository.OrdersFilter) ([]model.Order, int64, error)
}

// BalanceFacade provides balance and deposit operations.
type BalanceFacade interface {
	Balance(ctx context.Context, userID int64) (decimal.Decimal, error)
	RequestDeposit(ctx context.Context, userID int64, description, filename string, bill io.Reader) (*model.DepositRequest, error)
	MyDeposits(ctx context.Context, userID int64, page, limit int) ([]model.DepositRequest, int64, error)
	AdminDeposits(ctx context.Context, filter repository.DepositsFilter) ([]model.DepositRequest, int64, error)
	ReviewDeposit(ctx context.Context, depositID int64, approve bool) (*model.DepositRequest, error)
	DeleteDeposit(ctx context.Context, depositID int64) error
	AddMoney(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error)
}

// BannerCache serves the storefront banner snapshot.
type BannerCache interface {
	Entries() []model.BannerEntry
}

// ShopFacade aggregates the full set of operations used across handlers.
type ShopFacade interface {
	AuthFacade
	CatalogFacade
	OrderFacade
	BalanceFacade
}
