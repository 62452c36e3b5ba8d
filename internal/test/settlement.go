package test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/minhdn/gameshop/internal/domain/errors"
	"github.com/minhdn/gameshop/internal/domain/model"
	"github.com/minhdn/gameshop/internal/domain/repository"
)

// SettlementStore is an in-memory stand-in for the purchase transaction.
// It reproduces the settlement semantics under a single mutex so concurrent
// tests can hammer it and assert the money and listing invariants hold.
type SettlementStore struct {
	mu       sync.Mutex
	balances map[int64]decimal.Decimal
	listings map[int64]*model.GameAccount
	orders   []model.Order
	nextID   int64
}

// NewSettlementStore constructs an empty store.
func NewSettlementStore() *SettlementStore {
	return &SettlementStore{
		balances: make(map[int64]decimal.Decimal),
		listings: make(map[int64]*model.GameAccount),
		nextID:   1,
	}
}

// AddBuyer seeds a buyer balance.
func (s *SettlementStore) AddBuyer(userID int64, balance decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[userID] = balance
}

// AddListing seeds an available listing.
func (s *SettlementStore) AddListing(id int64, price decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings[id] = &model.GameAccount{
		ID:           id,
		Status:       model.AccountStatusAvailable,
		CurrentPrice: price,
	}
}

// Purchase settles one attempt with the same outcome taxonomy as the real
// repository.
func (s *SettlementStore) Purchase(ctx context.Context, buyerID, gameAccountID int64) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listing, ok := s.listings[gameAccountID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if listing.Status != model.AccountStatusAvailable {
		return nil, domainErrors.ErrNotAvailable
	}
	balance, ok := s.balances[buyerID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if balance.LessThan(listing.CurrentPrice) {
		return nil, domainErrors.ErrInsufficientFunds
	}

	s.balances[buyerID] = balance.Sub(listing.CurrentPrice)
	listing.Status = model.AccountStatusSold

	order := model.Order{
		ID:            s.nextID,
		UserID:        buyerID,
		GameAccountID: gameAccountID,
		PricePaid:     listing.CurrentPrice,
		CreatedAt:     time.Now(),
	}
	s.nextID++
	s.orders = append(s.orders, order)
	result := order
	return &result, nil
}

// GetByID looks up a settled order.
func (s *SettlementStore) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns settled orders, optionally filtered by buyer.
func (s *SettlementStore) List(ctx context.Context, filter repository.OrdersFilter) ([]model.Order, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Order
	for _, o := range s.orders {
		if filter.UserID > 0 && o.UserID != filter.UserID {
			continue
		}
		result = append(result, o)
	}
	return result, int64(len(result)), nil
}

// RecentSince returns banner projections of settled orders.
func (s *SettlementStore) RecentSince(ctx context.Context, since time.Time) ([]model.BannerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.BannerEntry
	for _, o := range s.orders {
		if o.CreatedAt.Before(since) {
			continue
		}
		result = append(result, model.BannerEntry{CreatedAt: o.CreatedAt})
	}
	return result, nil
}

// Balance reads the current balance of a buyer.
func (s *SettlementStore) Balance(userID int64) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balances[userID]
}

// Orders returns a snapshot of all settled orders.
func (s *SettlementStore) Orders() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Order(nil), s.orders...)
}

// ListingStatus reads the state of a listing.
func (s *SettlementStore) ListingStatus(id int64) model.AccountStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	if listing, ok := s.listings[id]; ok {
		return listing.Status
	}
	return ""
}
