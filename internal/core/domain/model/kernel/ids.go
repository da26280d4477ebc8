package kernel

import "fmt"

const (
	// FoodPrefix replaces the locality code for marketplace orders.
	FoodPrefix = "FOOD"

	orderSuffixRange   = 1000
	courierSuffixRange = 10000
)

// NewOrderID formats SD-<prefix>-<n>. Suffixes are drawn, not allocated, so
// callers redraw when the store reports the id as taken.
func NewOrderID(prefix string, rnd RandomSource) string {
	return fmt.Sprintf("SD-%s-%d", prefix, rnd.IntN(orderSuffixRange))
}

// NewCourierID formats RID-<n>.
func NewCourierID(rnd RandomSource) string {
	return fmt.Sprintf("RID-%d", rnd.IntN(courierSuffixRange))
}
