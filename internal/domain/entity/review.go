package entity

import "time"

const (
	// MinGrade is the lowest grade a review can carry.
	MinGrade = 1
	// MaxGrade is the highest grade a review can carry.
	MaxGrade = 5
)

// Review is a buyer's grade and optional comment on a product.
// ProductID is fixed once the review is created.
type Review struct {
	ID          int64
	UserID      int64
	ProductID   int64
	Comment     *string
	Grade       int
	CommentDate time.Time
	IsActive    bool
}

// IsOwnedBy reports whether the review was written by the given user.
func (r *Review) IsOwnedBy(userID int64) bool {
	return r.UserID == userID
}

// ValidGrade reports whether g lies within the accepted grade range.
func ValidGrade(g int) bool {
	return g >= MinGrade && g <= MaxGrade
}
