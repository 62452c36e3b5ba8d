package test

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/minhdn/gameshop/internal/domain/model"
	"github.com/minhdn/gameshop/internal/domain/repository"
)

// BannerFacadeStub feeds the banner worker with configurable snapshots.
type BannerFacadeStub struct {
	RecentFn func(context.Context, time.Duration) ([]model.BannerEntry, error)

	mu      sync.Mutex
	Entries []model.BannerEntry
	Calls   int
}

// RecentOrders returns the configured entries and counts invocations.
func (s *BannerFacadeStub) RecentOrders(ctx context.Context, window time.Duration) ([]model.BannerEntry, error) {
	s.mu.Lock()
	s.Calls++
	s.mu.Unlock()
	if s.RecentFn != nil {
		return s.RecentFn(ctx, window)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Entries, nil
}

// CallCount reports how many times the worker asked for entries.
func (s *BannerFacadeStub) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Calls
}

// SetEntries replaces the snapshot the stub serves.
func (s *BannerFacadeStub) SetEntries(entries []model.BannerEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Entries = entries
}

// BannerCacheStub serves a fixed banner snapshot to handlers.
type BannerCacheStub struct {
	Items []model.BannerEntry
}

// Entries returns the configured snapshot.
func (s BannerCacheStub) Entries() []model.BannerEntry {
	return s.Items
}

// AuthFacadeStub provides controllable behaviour for auth endpoints.
type AuthFacadeStub struct {
	RegisterFn       func(context.Context, string, string) (*model.User, string, error)
	AuthenticateFn   func(context.Context, string, string) (*model.User, string, error)
	ChangePasswordFn func(context.Context, int64, string, string) error
	ParseFn          func(string) (int64, model.Role, error)
	ProfileFn        func(context.Context, int64) (*model.User, error)
	UsersFn          func(context.Context, repository.UsersFilter) ([]model.User, int64, error)
	UpdateUserFn     func(context.Context, int64, string, model.Role, decimal.Decimal) (*model.User, error)
	DeleteUserFn     func(context.Context, int64) error
}

// Register delegates to the provided function or returns a default user.
func (s AuthFacadeStub) Register(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, Role: model.RoleUser}, "token", nil
}

// Authenticate delegates to the provided function or returns a default user.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, Role: model.RoleUser}, "token", nil
}

// ChangePassword executes the configured handler.
func (s AuthFacadeStub) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	if s.ChangePasswordFn != nil {
		return s.ChangePasswordFn(ctx, userID, oldPassword, newPassword)
	}
	return nil
}

// ParseToken resolves every token to user 1 unless configured otherwise.
func (s AuthFacadeStub) ParseToken(token string) (int64, model.Role, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, model.RoleUser, nil
}

// Profile returns the configured user.
func (s AuthFacadeStub) Profile(ctx context.Context, userID int64) (*model.User, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, userID)
	}
	return &model.User{ID: userID, Email: "user@example.com", Role: model.RoleUser}, nil
}

// Users returns the configured listing.
func (s AuthFacadeStub) Users(ctx context.Context, filter repository.UsersFilter) ([]model.User, int64, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx, filter)
	}
	return []model.User{{ID: 1, Email: "user@example.com", Role: model.RoleUser}}, 1, nil
}

// UpdateUser delegates or echoes the rewritten profile back.
func (s AuthFacadeStub) UpdateUser(ctx context.Context, userID int64, email string, role model.Role, money decimal.Decimal) (*model.User, error) {
	if s.UpdateUserFn != nil {
		return s.UpdateUserFn(ctx, userID, email, role, money)
	}
	return &model.User{ID: userID, Email: email, Role: role, Money: money}, nil
}

// DeleteUser executes the configured handler.
func (s AuthFacadeStub) DeleteUser(ctx context.Context, userID int64) error {
	if s.DeleteUserFn != nil {
		return s.DeleteUserFn(ctx, userID)
	}
	return nil
}

// CatalogFacadeStub provides controllable behaviour for catalog endpoints.
type CatalogFacadeStub struct {
	CategoriesFn     func(context.Context) ([]model.GameCategory, error)
	CategoryFn       func(context.Context, int64) (*model.GameCategory, error)
	CreateCategoryFn func(context.Context, string, string) (*model.GameCategory, error)
	UpdateCategoryFn func(context.Context, model.GameCategory) error
	DeleteCategoryFn func(context.Context, int64) error

	ListingsFn      func(context.Context, repository.AccountsFilter) ([]model.GameAccount, int64, error)
	ListingFn       func(context.Context, int64) (*model.GameAccount, error)
	CreateListingFn func(context.Context, model.GameAccount) (*model.GameAccount, error)
	UpdateListingFn func(context.Context, model.GameAccount) error
	DeleteListingFn func(context.Context, int64) error
}

// Categories returns the configured list.
func (s CatalogFacadeStub) Categories(ctx context.Context) ([]model.GameCategory, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return []model.GameCategory{{ID: 1, Name: "Genshin Impact"}}, nil
}

// Category returns the configured category.
func (s CatalogFacadeStub) Category(ctx context.Context, id int64) (*model.GameCategory, error) {
	if s.CategoryFn != nil {
		return s.CategoryFn(ctx, id)
	}
	return &model.GameCategory{ID: id, Name: "Genshin Impact"}, nil
}

// CreateCategory delegates or echoes the request back.
func (s CatalogFacadeStub) CreateCategory(ctx context.Context, name, imageURL string) (*model.GameCategory, error) {
	if s.CreateCategoryFn != nil {
		return s.CreateCategoryFn(ctx, name, imageURL)
	}
	return &model.GameCategory{ID: 1, Name: name, ImageURL: imageURL}, nil
}

// UpdateCategory executes the configured handler.
func (s CatalogFacadeStub) UpdateCategory(ctx context.Context, category model.GameCategory) error {
	if s.UpdateCategoryFn != nil {
		return s.UpdateCategoryFn(ctx, category)
	}
	return nil
}

// DeleteCategory executes the configured handler.
func (s CatalogFacadeStub) DeleteCategory(ctx context.Context, id int64) error {
	if s.DeleteCategoryFn != nil {
		return s.DeleteCategoryFn(ctx, id)
	}
	return nil
}

// Listings returns the configured page.
func (s CatalogFacadeStub) Listings(ctx context.Context, filter repository.AccountsFilter) ([]model.GameAccount, int64, error) {
	if s.ListingsFn != nil {
		return s.ListingsFn(ctx, filter)
	}
	return []model.GameAccount{{ID: 1, CategoryID: 1, Status: model.AccountStatusAvailable}}, 1, nil
}

// Listing returns the configured listing.
func (s CatalogFacadeStub) Listing(ctx context.Context, id int64) (*model.GameAccount, error) {
	if s.ListingFn != nil {
		return s.ListingFn(ctx, id)
	}
	return &model.GameAccount{ID: id, CategoryID: 1, Status: model.AccountStatusAvailable}, nil
}

// CreateListing delegates or echoes the request back.
func (s CatalogFacadeStub) CreateListing(ctx context.Context, account model.GameAccount) (*model.GameAccount, error) {
	if s.CreateListingFn != nil {
		return s.CreateListingFn(ctx, account)
	}
	account.ID = 1
	return &account, nil
}

// UpdateListing executes the configured handler.
func (s CatalogFacadeStub) UpdateListing(ctx context.Context, account model.GameAccount) error {
	if s.UpdateListingFn != nil {
		return s.UpdateListingFn(ctx, account)
	}
	return nil
}

// DeleteListing executes the configured handler.
func (s CatalogFacadeStub) DeleteListing(ctx context.Context, id int64) error {
	if s.DeleteListingFn != nil {
		return s.DeleteListingFn(ctx, id)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for purchase endpoints.
type OrderFacadeStub struct {
	PurchaseFn  func(context.Context, int64, int64) (*model.Order, error)
	MyOrdersFn  func(context.Context, int64, int, int) ([]model.Order, int64, error)
	OrderFn     func(context.Context, int64, model.Role, int64) (*model.Order, error)
	AllOrdersFn func(context.Context, repository.OrdersFilter) ([]model.Order, int64, error)
}

// Purchase delegates or returns a default settled order.
func (s OrderFacadeStub) Purchase(ctx context.Context, buyerID, gameAccountID int64) (*model.Order, error) {
	if s.PurchaseFn != nil {
		return s.PurchaseFn(ctx, buyerID, gameAccountID)
	}
	return &model.Order{ID: 1, UserID: buyerID, GameAccountID: gameAccountID}, nil
}

// MyOrders returns the configured page.
func (s OrderFacadeStub) MyOrders(ctx context.Context, userID int64, page, limit int) ([]model.Order, int64, error) {
	if s.MyOrdersFn != nil {
		return s.MyOrdersFn(ctx, userID, page, limit)
	}
	return []model.Order{{ID: 1, UserID: userID}}, 1, nil
}

// Order returns the configured order.
func (s OrderFacadeStub) Order(ctx context.Context, requesterID int64, role model.Role, orderID int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, requesterID, role, orderID)
	}
	return &model.Order{ID: orderID, UserID: requesterID}, nil
}

// AllOrders returns the configured page.
func (s OrderFacadeStub) AllOrders(ctx context.Context, filter repository.OrdersFilter) ([]model.Order, int64, error) {
	if s.AllOrdersFn != nil {
		return s.AllOrdersFn(ctx, filter)
	}
	return []model.Order{{ID: 1}}, 1, nil
}

// BalanceFacadeStub simulates balance and deposit operations.
type BalanceFacadeStub struct {
	BalanceFn        func(context.Context, int64) (decimal.Decimal, error)
	RequestDepositFn func(context.Context, int64, string, string, io.Reader) (*model.DepositRequest, error)
	MyDepositsFn     func(context.Context, int64, int, int) ([]model.DepositRequest, int64, error)
	AdminDepositsFn  func(context.Context, repository.DepositsFilter) ([]model.DepositRequest, int64, error)
	ReviewDepositFn  func(context.Context, int64, bool) (*model.DepositRequest, error)
	DeleteDepositFn  func(context.Context, int64) error
	AddMoneyFn       func(context.Context, int64, decimal.Decimal) (decimal.Decimal, error)
}

// Balance returns the configured amount.
func (s BalanceFacadeStub) Balance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	if s.BalanceFn != nil {
		return s.BalanceFn(ctx, userID)
	}
	return decimal.NewFromInt(10), nil
}

// RequestDeposit delegates or returns a pending request.
func (s BalanceFacadeStub) RequestDeposit(ctx context.Context, userID int64, description, filename string, bill io.Reader) (*model.DepositRequest, error) {
	if s.RequestDepositFn != nil {
		return s.RequestDepositFn(ctx, userID, description, filename, bill)
	}
	return &model.DepositRequest{ID: 1, UserID: userID, Description: description, Status: model.DepositStatusPending}, nil
}

// MyDeposits returns the configured page.
func (s BalanceFacadeStub) MyDeposits(ctx context.Context, userID int64, page, limit int) ([]model.DepositRequest, int64, error) {
	if s.MyDepositsFn != nil {
		return s.MyDepositsFn(ctx, userID, page, limit)
	}
	return []model.DepositRequest{{ID: 1, UserID: userID, Status: model.DepositStatusPending}}, 1, nil
}

// AdminDeposits returns the configured page.
func (s BalanceFacadeStub) AdminDeposits(ctx context.Context, filter repository.DepositsFilter) ([]model.DepositRequest, int64, error) {
	if s.AdminDepositsFn != nil {
		return s.AdminDepositsFn(ctx, filter)
	}
	return []model.DepositRequest{{ID: 1, Status: model.DepositStatusPending}}, 1, nil
}

// ReviewDeposit delegates or approves the request.
func (s BalanceFacadeStub) ReviewDeposit(ctx context.Context, depositID int64, approve bool) (*model.DepositRequest, error) {
	if s.ReviewDepositFn != nil {
		return s.ReviewDepositFn(ctx, depositID, approve)
	}
	status := model.DepositStatusRejected
	if approve {
		status = model.DepositStatusApproved
	}
	return &model.DepositRequest{ID: depositID, Status: status}, nil
}

// DeleteDeposit executes the configured handler.
func (s BalanceFacadeStub) DeleteDeposit(ctx context.Context, depositID int64) error {
	if s.DeleteDepositFn != nil {
		return s.DeleteDepositFn(ctx, depositID)
	}
	return nil
}

// AddMoney delegates or returns the credited amount.
func (s BalanceFacadeStub) AddMoney(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	if s.AddMoneyFn != nil {
		return s.AddMoneyFn(ctx, userID, amount)
	}
	return amount, nil
}

// ShopFacadeStub aggregates the per-area stubs into the full handler surface.
type ShopFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	OrderFacadeStub
	BalanceFacadeStub
}
