package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. Price is stored as NUMERIC(10,2).
type ProductModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"type:varchar(100);not null"`
	Description *string         `gorm:"type:varchar(500)"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	ImageURL    *string         `gorm:"column:image_url;type:varchar(200)"`
	Stock       int             `gorm:"not null"`
	CategoryID  int64           `gorm:"not null;index"`
	SellerID    int64           `gorm:"not null;index"`
	Rating      float64         `gorm:"not null;default:0"`
	IsActive    bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
