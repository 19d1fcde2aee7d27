package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Price always carries two decimal places.
type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Image        string          `json:"image"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	CountInStock int             `json:"countInStock"`
	CreatedAt    time.Time       `json:"createdAt"`
}
