package order

import (
	"github.com/aleksandar-ristic/StarterStore/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	// Orders with an items subtotal strictly above the threshold ship free.
	freeShippingThreshold = decimal.NewFromInt(200)
	flatShippingFee       = decimal.NewFromInt(15)
	taxRate               = decimal.NewFromFloat(0.15)
)

// Pricing is the full derived price breakdown for an order.
type Pricing struct {
	ItemsPrice    decimal.Decimal
	ShippingPrice decimal.Decimal
	TaxPrice      decimal.Decimal
	TotalPrice    decimal.Decimal
}

// derivePricing computes the price breakdown from order items. Sums are
// rounded half up to two decimals; an items subtotal of exactly 200.00 still
// pays the flat fee.
func derivePricing(items []domain.OrderItem) Pricing {
	itemsPrice := decimal.Zero
	for _, item := range items {
		itemsPrice = itemsPrice.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Qty))))
	}
	itemsPrice = domain.RoundMoney(itemsPrice)

	shippingPrice := flatShippingFee
	if itemsPrice.GreaterThan(freeShippingThreshold) {
		shippingPrice = decimal.Zero
	}

	taxPrice := domain.RoundMoney(itemsPrice.Mul(taxRate))

	return Pricing{
		ItemsPrice:    itemsPrice,
		ShippingPrice: shippingPrice,
		TaxPrice:      taxPrice,
		TotalPrice:    itemsPrice.Add(shippingPrice).Add(taxPrice),
	}
}
