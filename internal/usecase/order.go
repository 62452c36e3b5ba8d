package usecase

import (
	"context"
	"time"

	domainErrors "github.com/minhdn/gameshop/internal/domain/errors"
	"github.com/minhdn/gameshop/internal/domain/model"
	"github.com/minhdn/gameshop/internal/domain/repository"
)

// OrderUseCase coordinates purchases and order history.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Purchase buys one listing for the buyer. All settlement rules live in the
// repository transaction; this layer only rejects impossible identifiers.
func (u *OrderUseCase) Purchase(ctx context.Context, buyerID, gameAccountID int64) (*model.Order, error) {
	if buyerID <= 0 || gameAccountID <= 0 {
		return nil, domainErrors.ErrNotFound
	}
	return u.orders.Purchase(ctx, buyerID, gameAccountID)
}

// MyOrders returns the buyer's purchase history.
func (u *OrderUseCase) MyOrders(ctx context.Context, userID int64, page, limit int) ([]model.Order, int64, error) {
	return u.orders.List(ctx, repository.OrdersFilter{UserID: userID, Page: page, Limit: limit})
}

// Get returns one order. Buyers see only their own orders; admins see all.
func (u *OrderUseCase) Get(ctx context.Context, requesterID int64, role model.Role, orderID int64) (*model.Order, error) {
	if orderID <= 0 {
		return nil, domainErrors.ErrNotFound
	}
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if role != model.RoleAdmin && order.UserID != requesterID {
		return nil, domainErrors.ErrNotFound
	}
	return order, nil
}

// AdminList returns all orders for administrators.
func (u *OrderUseCase) AdminList(ctx context.Context, filter repository.OrdersFilter) ([]model.Order, int64, error) {
	return u.orders.List(ctx, filter)
}

// RecentBanner returns recent sales with masked buyer emails, suitable for
// the public storefront.
func (u *OrderUseCase) RecentBanner(ctx context.Context, window time.Duration) ([]model.BannerEntry, error) {
	entries, err := u.orders.RecentSince(ctx, time.Now().Add(-window))
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].BuyerEmail = MaskEmail(entries[i].BuyerEmail)
	}
	return entries, nil
}
