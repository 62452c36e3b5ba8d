package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the immutable record of a completed purchase. PricePaid captures
// the listing price at the instant of sale and never changes afterwards.
// CategoryName and BuyerEmail are denormalized so callers avoid a second
// round trip.
type Order struct {
	ID            int64
	UserID        int64
	GameAccountID int64
	PricePaid     decimal.Decimal
	CreatedAt     time.Time
	CategoryName  string
	Description   string
	BuyerEmail    string
}

// BannerEntry is a public projection of a recent sale shown on the storefront.
type BannerEntry struct {
	CreatedAt   time.Time
	GameName    string
	Description string
	BuyerEmail  string
}
