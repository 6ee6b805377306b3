package hierarchy

import (
	"context"
	"testing"

	"market/internal/domain/entity"
	"market/internal/errors"

	"github.com/stretchr/testify/assert"
)

func ptr(id int64) *int64 {
	return &id
}

func category(id int64, parentID *int64, active bool) *entity.Category {
	return &entity.Category{ID: id, Name: "category", ParentID: parentID, IsActive: active}
}

func TestCheckNoCycle(t *testing.T) {
	// 1 <- 2 <- 3 <- 4, 5 is inactive and parents 6
	categories := []*entity.Category{
		category(1, nil, true),
		category(2, ptr(1), true),
		category(3, ptr(2), true),
		category(4, ptr(3), true),
		category(5, nil, false),
		category(6, ptr(5), true),
		category(7, nil, true),
	}
	arena := NewArena(categories)

	tests := []struct {
		name        string
		categoryID  int64
		newParentID int64
		wantErr     error
	}{
		{name: "self parent on root", categoryID: 1, newParentID: 1, wantErr: ErrSelfParent},
		{name: "self parent on leaf", categoryID: 4, newParentID: 4, wantErr: ErrSelfParent},
		{name: "root under direct child", categoryID: 1, newParentID: 2, wantErr: ErrCircularReference},
		{name: "root under deep descendant", categoryID: 1, newParentID: 4, wantErr: ErrCircularReference},
		{name: "middle node under its descendant", categoryID: 2, newParentID: 4, wantErr: ErrCircularReference},
		{name: "leaf under ancestor", categoryID: 4, newParentID: 1},
		{name: "move to unrelated root", categoryID: 3, newParentID: 7},
		{name: "chain through inactive node terminates", categoryID: 1, newParentID: 6},
		{name: "unknown parent terminates", categoryID: 1, newParentID: 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckNoCycle(context.Background(), arena, tt.categoryID, tt.newParentID)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestCheckNoCycle_RejectsEveryAncestorAfterReparent(t *testing.T) {
	// A chain 1 <- 2 <- 3; after making 3 the parent of 10 (A=10, B=3),
	// 3 and all its ancestors cannot move under 10.
	arena := NewArena([]*entity.Category{
		category(1, nil, true),
		category(2, ptr(1), true),
		category(3, ptr(2), true),
		category(10, ptr(3), true),
	})

	for _, ancestor := range []int64{3, 2, 1} {
		err := CheckNoCycle(context.Background(), arena, ancestor, 10)
		assert.ErrorIs(t, err, ErrCircularReference, "ancestor %d", ancestor)
	}
}

func TestCheckNoCycle_ExistingLoopTerminates(t *testing.T) {
	// 20 and 21 already point at each other.
	arena := NewArena([]*entity.Category{
		category(20, ptr(21), true),
		category(21, ptr(20), true),
		category(30, nil, true),
	})

	err := CheckNoCycle(context.Background(), arena, 30, 20)
	assert.ErrorIs(t, err, ErrCircularReference)
}

func TestNewArena_SkipsInactive(t *testing.T) {
	arena := NewArena([]*entity.Category{
		category(1, nil, true),
		category(2, ptr(1), false),
		nil,
	})

	_, ok, err := arena.Parent(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, ok)
	_, ok, _ = arena.Parent(context.Background(), 2)
	assert.False(t, ok)
}

type failingLookup struct{}

func (failingLookup) Parent(context.Context, int64) (*int64, bool, error) {
	return nil, false, errors.New("connection reset")
}

func TestCheckNoCycle_LookupError(t *testing.T) {
	err := CheckNoCycle(context.Background(), failingLookup{}, 1, 2)

	assert.ErrorContains(t, err, "failed to resolve parent of category 2")
	assert.False(t, errors.Is(err, ErrCircularReference))
}
