package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus describes the lifecycle of a listing. A listing is created
// available and exactly one purchase may ever move it to sold.
type AccountStatus string

const (
	AccountStatusAvailable AccountStatus = "available"
	AccountStatusReserved  AccountStatus = "reserved"
	AccountStatusSold      AccountStatus = "sold"
)

// AccountType distinguishes premium listings.
type AccountType string

const (
	AccountTypeVIP    AccountType = "VIP"
	AccountTypeNormal AccountType = "Normal"
)

// GameAccount is the purchasable unit: a uniquely owned game account listing.
type GameAccount struct {
	ID            int64
	CategoryID    int64
	CategoryName  string
	Status        AccountStatus
	OriginalPrice decimal.Decimal
	CurrentPrice  decimal.Decimal
	Description   string
	MainImageURL  string
	Type          AccountType
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
