package domain

import "github.com/shopspring/decimal"

// CartItem is a snapshot of select product fields taken at add-to-cart time.
// It may drift from the live product record until checkout.
type CartItem struct {
	ProductID    string          `json:"productId"`
	Name         string          `json:"name"`
	Image        string          `json:"image"`
	Price        decimal.Decimal `json:"price"`
	CountInStock int             `json:"countInStock"`
	Qty          int             `json:"qty"`
}

// MergeCartItem adds item to the cart, keeping at most one entry per product.
// An existing entry for the same product is replaced, snapshot and quantity
// included, so re-adding with quantity q ends up at q rather than
// accumulating.
func MergeCartItem(items []CartItem, item CartItem) []CartItem {
	for i, existing := range items {
		if existing.ProductID == item.ProductID {
			out := make([]CartItem, len(items))
			copy(out, items)
			out[i] = item
			return out
		}
	}
	out := make([]CartItem, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}

// RemoveCartItem filters out the entry for productID. Removing an absent
// product leaves the cart unchanged.
func RemoveCartItem(items []CartItem, productID string) []CartItem {
	out := make([]CartItem, 0, len(items))
	for _, item := range items {
		if item.ProductID != productID {
			out = append(out, item)
		}
	}
	return out
}

// CartSubtotal sums price times quantity over all items.
func CartSubtotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Qty))))
	}
	return total
}
