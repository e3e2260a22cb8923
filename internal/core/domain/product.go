package domain

import "fmt"

// Product is a catalog item with price and stock on hand.
type Product struct {
	ID       string  `json:"_id"`
	Name     string  `json:"nome"`
	Category string  `json:"categoria"`
	Price    float64 `json:"valor"`
	Stock    int     `json:"estoque"`
}

// ProductPatch is a partial product update; nil fields are not modified.
type ProductPatch struct {
	Name     *string
	Category *string
	Price    *float64
	Stock    *int
}

// Empty reports whether no field is set.
func (p ProductPatch) Empty() bool {
	return p.Name == nil && p.Category == nil && p.Price == nil && p.Stock == nil
}

// Validate checks the invariants that hold for every stored product.
func (p Product) Validate() error {
	if p.Name == "" || p.Category == "" {
		return ErrMissingFields
	}
	return checkAmounts(p.Price, p.Stock)
}

// Validate checks the fields present in the patch.
func (p ProductPatch) Validate() error {
	if p.Name != nil && *p.Name == "" {
		return fmt.Errorf("%w: nome cannot be empty", ErrValidation)
	}
	if p.Category != nil && *p.Category == "" {
		return fmt.Errorf("%w: categoria cannot be empty", ErrValidation)
	}
	price, stock := 0.0, 0
	if p.Price != nil {
		price = *p.Price
	}
	if p.Stock != nil {
		stock = *p.Stock
	}
	return checkAmounts(price, stock)
}

func checkAmounts(price float64, stock int) error {
	if price < 0 {
		return fmt.Errorf("%w: valor must not be negative", ErrValidation)
	}
	if stock < 0 {
		return fmt.Errorf("%w: estoque must not be negative", ErrValidation)
	}
	return nil
}

// DashboardStats holds the document counts shown on the dashboard.
type DashboardStats struct {
	ProductCount int64 `json:"productCount"`
	UserCount    int64 `json:"userCount"`
}
