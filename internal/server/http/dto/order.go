package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseRequest asks to buy one listing.
type PurchaseRequest struct {
	GameAccountID int64 `json:"game_account_id"`
}

// OrderResponse is the projection of a settled order.
type OrderResponse struct {
	ID            int64           `json:"id"`
	GameAccountID int64           `json:"game_account_id"`
	PricePaid     decimal.Decimal `json:"price_paid"`
	CategoryName  string          `json:"category_name"`
	Description   string          `json:"description"`
	BuyerEmail    string          `json:"buyer_email,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// BannerEntryResponse is one recent sale on the storefront banner.
type BannerEntryResponse struct {
	GameName    string    `json:"game_name"`
	Description string    `json:"description"`
	BuyerEmail  string    `json:"buyer_email"`
	SoldAt      time.Time `json:"sold_at"`
}
