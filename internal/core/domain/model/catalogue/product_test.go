package catalogue_test

import (
	"testing"

	"speedial/internal/core/domain/model/catalogue"
	"speedial/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var suya = catalogue.Product{
	ID:            "P-001",
	Name:          "Spicy Suya Platter",
	Price:         3500,
	Category:      catalogue.CategoryGrills,
	JointName:     "Arewa Grill Central",
	JointLocation: "Wuse II, Abuja",
}

var zobo = catalogue.Product{
	ID:            "P-003",
	Name:          "Zobo Refreshment (1L)",
	Price:         1200,
	Category:      catalogue.CategoryDrinks,
	JointName:     "Nature Sip Kaduna",
	JointLocation: "Independence Way, Kaduna",
}

func TestProduct_Validate(t *testing.T) {
	require.NoError(t, suya.Validate())

	broken := suya
	broken.Price = 0
	broken.Category = "sweets"
	err := broken.Validate()

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "sweets")
}

func TestProduct_PickupAddress(t *testing.T) {
	assert.Equal(t, "Arewa Grill Central, Wuse II, Abuja", suya.PickupAddress())
}

func TestNewQuote(t *testing.T) {
	tests := []struct {
		name  string
		items []catalogue.Product
		want  catalogue.Quote
	}{
		{
			name:  "empty cart still carries the fee",
			items: nil,
			want:  catalogue.Quote{Items: 0, Subtotal: 0, DispatchFee: 500, Total: 500},
		},
		{
			name:  "two items",
			items: []catalogue.Product{suya, zobo},
			want:  catalogue.Quote{Items: 2, Subtotal: 4700, DispatchFee: 500, Total: 5200},
		},
		{
			name:  "duplicates count twice",
			items: []catalogue.Product{zobo, zobo},
			want:  catalogue.Quote{Items: 2, Subtotal: 2400, DispatchFee: 500, Total: 2900},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalogue.NewQuote(tt.items))
		})
	}
}
