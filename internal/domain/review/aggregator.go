package review

import (
	"context"
	"fmt"
)

// Aggregator keeps Product.rating equal to the mean grade of the product's
// active reviews. It runs inside the caller's transaction when one is
// carried by ctx.
type Aggregator struct {
	store RatingStore
}

func NewAggregator(store RatingStore) *Aggregator {
	return &Aggregator{store: store}
}

func (a *Aggregator) Recompute(ctx context.Context, productID int64) (float64, error) {
	grades, err := a.store.ActiveGrades(ctx, productID)
	if err != nil {
		return 0, fmt.Errorf("read active grades: %w", err)
	}
	rating := Mean(grades)
	if err := a.store.SetProductRating(ctx, productID, rating); err != nil {
		return 0, fmt.Errorf("write product rating: %w", err)
	}
	return rating, nil
}

// Mean returns the arithmetic mean of grades, or 0 for an empty set.
func Mean(grades []int) float64 {
	if len(grades) == 0 {
		return 0
	}
	sum := 0
	for _, g := range grades {
		sum += g
	}
	return float64(sum) / float64(len(grades))
}
