package app

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/minhdn/gameshop/internal/domain/errors"
	"github.com/minhdn/gameshop/internal/domain/model"
	"github.com/minhdn/gameshop/internal/domain/repository"
	"github.com/minhdn/gameshop/internal/usecase"
)

// ShopFacade aggregates use cases behind the single surface the HTTP layer
// and the banner worker consume.
type ShopFacade struct {
	auth    *usecase.AuthUseCase
	catalog *usecase.CatalogUseCase
	orders  *usecase.OrderUseCase
	balance *usecase.BalanceUseCase
}

// NewShopFacade constructs ShopFacade.
func NewShopFacade(auth *usecase.AuthUseCase, catalog *usecase.CatalogUseCase, orders *usecase.OrderUseCase, balance *usecase.BalanceUseCase) *ShopFacade {
	return &ShopFacade{auth: auth, catalog: catalog, orders: orders, balance: balance}
}

func (f *ShopFacade) Register(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Register(ctx, email, password)
}

func (f *ShopFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *ShopFacade) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	return f.auth.ChangePassword(ctx, userID, oldPassword, newPassword)
}

func (f *ShopFacade) ParseToken(token string) (int64, model.Role, error) {
	return f.auth.ParseToken(token)
}

func (f *ShopFacade) Profile(ctx context.Context, userID int64) (*model.User, error) {
	return f.auth.GetByID(ctx, userID)
}

func (f *ShopFacade) Users(ctx context.Context, filter repository.UsersFilter) ([]model.User, int64, error) {
	return f.auth.Users(ctx, filter)
}

func (f *ShopFacade) UpdateUser(ctx context.Context, userID int64, email string, role model.Role, money decimal.Decimal) (*model.User, error) {
	return f.auth.UpdateUser(ctx, userID, email, role, money)
}

func (f *ShopFacade) DeleteUser(ctx context.Context, userID int64) error {
	return f.auth.DeleteUser(ctx, userID)
}

func (f *ShopFacade) Categories(ctx context.Context) ([]model.GameCategory, error) {
	return f.catalog.Categories(ctx)
}

func (f *ShopFacade) Category(ctx context.Context, id int64) (*model.GameCategory, error) {
	return f.catalog.Category(ctx, id)
}

func (f *ShopFacade) CreateCategory(ctx context.Context, name, imageURL string) (*model.GameCategory, error) {
	return f.catalog.CreateCategory(ctx, name, imageURL)
}

func (f *ShopFacade) UpdateCategory(ctx context.Context, category model.GameCategory) error {
	return f.catalog.UpdateCategory(ctx, category)
}

func (f *ShopFacade) DeleteCategory(ctx context.Context, id int64) error {
	return f.catalog.DeleteCategory(ctx, id)
}

func (f *ShopFacade) Listings(ctx context.Context, filter repository.AccountsFilter) ([]model.GameAccount, int64, error) {
	return f.catalog.Listings(ctx, filter)
}

func (f *ShopFacade) Listing(ctx context.Context, id int64) (*model.GameAccount, error) {
	return f.catalog.Listing(ctx, id)
}

func (f *ShopFacade) CreateListing(ctx context.Context, account model.GameAccount) (*model.GameAccount, error) {
	return f.catalog.CreateListing(ctx, account)
}

func (f *ShopFacade) UpdateListing(ctx context.Context, account model.GameAccount) error {
	return f.catalog.UpdateListing(ctx, account)
}

func (f *ShopFacade) DeleteListing(ctx context.Context, id int64) error {
	return f.catalog.DeleteListing(ctx, id)
}

func (f *ShopFacade) Purchase(ctx context.Context, buyerID, gameAccountID int64) (*model.Order, error) {
	return f.orders.Purchase(ctx, buyerID, gameAccountID)
}

func (f *ShopFacade) MyOrders(ctx context.Context, userID int64, page, limit int) ([]model.Order, int64, error) {
	return f.orders.MyOrders(ctx, userID, page, limit)
}

func (f *ShopFacade) Order(ctx context.Context, requesterID int64, role model.Role, orderID int64) (*model.Order, error) {
	return f.orders.Get(ctx, requesterID, role, orderID)
}

func (f *ShopFacade) AllOrders(ctx context.Context, filter repository.OrdersFilter) ([]model.Order, int64, error) {
	return f.orders.AdminList(ctx, filter)
}

// RecentOrders feeds the banner worker.
func (f *ShopFacade) RecentOrders(ctx context.Context, window time.Duration) ([]model.BannerEntry, error) {
	return f.orders.RecentBanner(ctx, window)
}

// Balance treats an unknown user as an empty wallet so fresh accounts render
// a zero balance instead of an error page.
func (f *ShopFacade) Balance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	money, err := f.balance.Balance(ctx, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	return money, nil
}

func (f *ShopFacade) RequestDeposit(ctx context.Context, userID int64, description, filename string, bill io.Reader) (*model.DepositRequest, error) {
	return f.balance.RequestDeposit(ctx, userID, description, filename, bill)
}

func (f *ShopFacade) MyDeposits(ctx context.Context, userID int64, page, limit int) ([]model.DepositRequest, int64, error) {
	return f.balance.MyDeposits(ctx, userID, page, limit)
}

func (f *ShopFacade) AdminDeposits(ctx context.Context, filter repository.DepositsFilter) ([]model.DepositRequest, int64, error) {
	return f.balance.AdminDeposits(ctx, filter)
}

func (f *ShopFacade) ReviewDeposit(ctx context.Context, depositID int64, approve bool) (*model.DepositRequest, error) {
	return f.balance.ReviewDeposit(ctx, depositID, approve)
}

func (f *ShopFacade) DeleteDeposit(ctx context.Context, depositID int64) error {
	return f.balance.DeleteDeposit(ctx, depositID)
}

func (f *ShopFacade) AddMoney(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	return f.balance.AddMoney(ctx, userID, amount)
}
