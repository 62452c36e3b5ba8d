package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryRequest creates or updates a game category.
type CategoryRequest struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// CategoryResponse is the public projection of a game category.
type CategoryResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// AccountRequest creates or updates a listing.
type AccountRequest struct {
	CategoryID    int64           `json:"category_id"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	CurrentPrice  decimal.Decimal `json:"current_price"`
	Description   string          `json:"description"`
	MainImageURL  string          `json:"main_image_url"`
	Type          string          `json:"type"`
}

// AccountResponse is the public projection of a listing.
type AccountResponse struct {
	ID            int64           `json:"id"`
	CategoryID    int64           `json:"category_id"`
	CategoryName  string          `json:"category_name"`
	Status        string          `json:"status"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	CurrentPrice  decimal.Decimal `json:"current_price"`
	Description   string          `json:"description"`
	MainImageURL  string          `json:"main_image_url"`
	Type          string          `json:"type"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Page wraps a list response with pagination metadata.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int64 `json:"total_pages"`
}

// NewPage assembles pagination metadata around items.
func NewPage[T any](items []T, total int64, page, limit int) Page[T] {
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}
	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}
	return Page[T]{Items: items, Total: total, Page: page, Limit: limit, TotalPages: totalPages}
}
