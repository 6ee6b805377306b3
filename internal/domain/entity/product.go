package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is an item listed by a seller under an active category.
// Rating is derived from active reviews and is only written by the rating aggregator.
type Product struct {
	ID          int64
	Name        string
	Description *string
	Price       decimal.Decimal
	ImageURL    *string
	Stock       int
	CategoryID  int64
	SellerID    int64
	Rating      float64
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOwnedBy reports whether the product belongs to the given seller.
func (p *Product) IsOwnedBy(userID int64) bool {
	return p.SellerID == userID
}
