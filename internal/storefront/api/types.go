package api

import (
	"time"

	"github.com/aleksandar-ristic/StarterStore/internal/domain"
	"github.com/shopspring/decimal"
)

// Schemas for the network boundary. Prices arrive as two-decimal strings and
// are parsed into decimals on receipt.

type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Image        string          `json:"image"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	CountInStock int             `json:"countInStock"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type OrderItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	Price     decimal.Decimal `json:"price"`
	Qty       int             `json:"qty"`
}

type Order struct {
	ID              string                 `json:"id"`
	UserID          string                 `json:"userId"`
	OrderItems      []OrderItem            `json:"orderItems"`
	ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
	ItemsPrice      decimal.Decimal        `json:"itemsPrice"`
	ShippingPrice   decimal.Decimal        `json:"shippingPrice"`
	TaxPrice        decimal.Decimal        `json:"taxPrice"`
	TotalPrice      decimal.Decimal        `json:"totalPrice"`
	IsPaid          bool                   `json:"isPaid"`
	PaidAt          *time.Time             `json:"paidAt,omitempty"`
	IsDelivered     bool                   `json:"isDelivered"`
	DeliveredAt     *time.Time             `json:"deliveredAt,omitempty"`
	PaymentResult   *domain.PaymentResult  `json:"paymentResult,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// PaymentResult is what the payment gateway reports back on success.
type PaymentResult = domain.PaymentResult

type CreateOrderRequest struct {
	OrderItems      []domain.CartItem      `json:"orderItems"`
	ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
}

type AuthUser struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	Token   string `json:"token"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
