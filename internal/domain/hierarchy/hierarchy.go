// Package hierarchy keeps the category parent graph acyclic.
package hierarchy

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/errors"
)

var (
	// ErrSelfParent is returned when a category is asked to be its own parent.
	ErrSelfParent = errors.New("category cannot be its own parent")

	// ErrCircularReference is returned when the new parent chain leads back to the category.
	ErrCircularReference = errors.New("category cannot be a descendant of itself")
)

// ParentLookup resolves the parent of an active category. ok is false when the
// category is missing or inactive, which ends the walk.
type ParentLookup interface {
	Parent(ctx context.Context, id int64) (parentID *int64, ok bool, err error)
}

// Arena indexes the parent of every active category by id.
type Arena map[int64]*int64

// NewArena builds an arena from categories. Inactive entries are skipped so
// that walks stop at them.
func NewArena(categories []*entity.Category) Arena {
	arena := make(Arena, len(categories))
	for _, c := range categories {
		if c == nil || !c.IsActive {
			continue
		}
		arena[c.ID] = c.ParentID
	}

	return arena
}

// Parent implements ParentLookup.
func (a Arena) Parent(_ context.Context, id int64) (*int64, bool, error) {
	parentID, ok := a[id]

	return parentID, ok, nil
}

// CheckNoCycle reports whether re-pointing categoryID at newParentID would make
// the category its own ancestor. The walk starts at newParentID and follows
// active parents until it reaches a root or a node the lookup does not know.
// Every node is visited at most once, so an existing loop that does not involve
// categoryID is also reported as ErrCircularReference instead of spinning.
func CheckNoCycle(ctx context.Context, lookup ParentLookup, categoryID, newParentID int64) error {
	if newParentID == categoryID {
		return ErrSelfParent
	}

	visited := make(map[int64]struct{})
	current := newParentID
	for {
		if current == categoryID {
			return ErrCircularReference
		}
		if _, seen := visited[current]; seen {
			return ErrCircularReference
		}
		visited[current] = struct{}{}

		parentID, ok, err := lookup.Parent(ctx, current)
		if err != nil {
			return errors.Wrapf(err, "failed to resolve parent of category %d", current)
		}
		if !ok || parentID == nil {
			return nil
		}
		current = *parentID
	}
}
