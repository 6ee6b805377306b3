package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleOrDefault(t *testing.T) {
	assert.Equal(t, RoleBuyer, RoleOrDefault(""))
	assert.Equal(t, RoleSeller, RoleOrDefault("seller"))
	assert.False(t, RoleOrDefault("owner").IsValid())
}

func TestValidGrade(t *testing.T) {
	for g := MinGrade; g <= MaxGrade; g++ {
		assert.True(t, ValidGrade(g), "grade %d", g)
	}
	assert.False(t, ValidGrade(0))
	assert.False(t, ValidGrade(6))
}

func TestOwnership(t *testing.T) {
	p := &Product{SellerID: 4}
	r := &Review{UserID: 5}

	assert.True(t, p.IsOwnedBy(4))
	assert.False(t, p.IsOwnedBy(5))
	assert.True(t, r.IsOwnedBy(5))
	assert.False(t, r.IsOwnedBy(4))
}
