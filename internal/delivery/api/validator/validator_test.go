package validator

import (
	"testing"

	"market/internal/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type priced struct {
	Name  string          `json:"name" validate:"required,min=3,max=10"`
	Price decimal.Decimal `json:"price" validate:"money"`
	Stock int             `json:"stock" validate:"gte=0"`
	Role  string          `json:"role,omitempty" validate:"omitempty,oneof=buyer seller admin"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		input      priced
		wantFields map[string]string
	}{
		{
			name:  "valid",
			input: priced{Name: "Lamp", Price: decimal.RequireFromString("10.50"), Stock: 0},
		},
		{
			name:  "price with three decimals",
			input: priced{Name: "Lamp", Price: decimal.RequireFromString("10.505")},
			wantFields: map[string]string{
				"price": "must be a positive amount with at most 2 decimal places",
			},
		},
		{
			name:  "zero price and short name",
			input: priced{Name: "La", Price: decimal.Zero},
			wantFields: map[string]string{
				"name":  "must be at least 3 characters",
				"price": "must be a positive amount with at most 2 decimal places",
			},
		},
		{
			name:  "negative stock and unknown role",
			input: priced{Name: "Lamp", Price: decimal.RequireFromString("1"), Stock: -1, Role: "root"},
			wantFields: map[string]string{
				"stock": "must be greater than or equal to 0",
				"role":  "must be one of buyer, seller, admin",
			},
		},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)

			if tt.wantFields == nil {
				require.NoError(t, err)

				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantFields, verr.Fields)
		})
	}
}
