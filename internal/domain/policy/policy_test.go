package policy

import (
	"testing"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	seller := Actor{UserID: 7, Role: entity.RoleSeller}
	buyer := Actor{UserID: 8, Role: entity.RoleBuyer}
	admin := Actor{UserID: 1, Role: entity.RoleAdmin}

	tests := []struct {
		name    string
		actor   Actor
		cap     Capability
		wantErr error
	}{
		{
			name:  "role matches",
			actor: admin,
			cap:   Require(entity.RoleAdmin),
		},
		{
			name:    "role mismatch",
			actor:   buyer,
			cap:     Require(entity.RoleAdmin),
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:  "owner matches",
			actor: seller,
			cap:   Require(entity.RoleSeller).OwnedBy(7, domainerrors.ErrProductUpdateForbidden),
		},
		{
			name:    "owner mismatch uses operation error",
			actor:   seller,
			cap:     Require(entity.RoleSeller).OwnedBy(9, domainerrors.ErrProductDeleteForbidden),
			wantErr: domainerrors.ErrProductDeleteForbidden,
		},
		{
			name:    "role is checked before ownership",
			actor:   buyer,
			cap:     Require(entity.RoleSeller).OwnedBy(8, domainerrors.ErrProductUpdateForbidden),
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:    "admin is not implicitly a seller",
			actor:   admin,
			cap:     Require(entity.RoleSeller),
			wantErr: domainerrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.actor, tt.cap)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestActorOf(t *testing.T) {
	actor := ActorOf(&entity.User{ID: 3, Role: entity.RoleBuyer})

	assert.Equal(t, Actor{UserID: 3, Role: entity.RoleBuyer}, actor)
}
