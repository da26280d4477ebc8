// Package catalogue models the marketplace: products sold by partner joints
// and the cart quote charged for a food order.
package catalogue

import (
	"errors"
	"fmt"
	"strings"

	"speedial/internal/pkg/errs"
)

// DispatchFee is the flat delivery charge added to every cart, in naira.
const DispatchFee = 500

// Category groups products on the marketplace screen.
type Category string

const (
	CategoryGrills Category = "grills"
	CategoryDrinks Category = "drinks"
	CategoryBites  Category = "bites"
)

func (c Category) Validate() error {
	switch c {
	case CategoryGrills, CategoryDrinks, CategoryBites:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%q is not a valid category", string(c)))
	}
}

// Product is a marketplace item. Prices are whole naira.
type Product struct {
	ID            string
	Name          string
	Price         int
	Category      Category
	Image         string
	JointName     string
	JointLocation string
}

func (p Product) Validate() error {
	var errList []error
	if strings.TrimSpace(p.ID) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("id"))
	}
	if strings.TrimSpace(p.Name) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if p.Price <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d must be positive", p.Price)))
	}
	if strings.TrimSpace(p.JointName) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("jointName"))
	}
	errList = append(errList, p.Category.Validate())
	return errors.Join(errList...)
}

// PickupAddress is where a rider collects the product.
func (p Product) PickupAddress() string {
	return p.JointName + ", " + p.JointLocation
}

// Quote is the price breakdown of a cart.
type Quote struct {
	Items       int
	Subtotal    int
	DispatchFee int
	Total       int
}

// NewQuote totals the cart and adds the flat dispatch fee.
func NewQuote(items []Product) Quote {
	subtotal := 0
	for _, p := range items {
		subtotal += p.Price
	}
	return Quote{
		Items:       len(items),
		Subtotal:    subtotal,
		DispatchFee: DispatchFee,
		Total:       subtotal + DispatchFee,
	}
}
