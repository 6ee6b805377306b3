package entity

// Category is a node of the catalog tree. ParentID is nil for root categories.
type Category struct {
	ID       int64
	Name     string
	ParentID *int64
	IsActive bool
}

// IsRoot reports whether the category has no parent.
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}
