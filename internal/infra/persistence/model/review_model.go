package model

import "time"

// ReviewModel mirrors the 'reviews' table. A partial unique index keeps at most
// one active review per (user_id, product_id).
type ReviewModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	UserID      int64     `gorm:"not null;index"`
	ProductID   int64     `gorm:"not null;index"`
	Comment     *string   `gorm:"type:text"`
	Grade       int       `gorm:"not null"`
	CommentDate time.Time `gorm:"not null"`
	IsActive    bool      `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
