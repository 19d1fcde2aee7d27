package httpserver

import (
	"time"

	"github.com/aleksandar-ristic/StarterStore/internal/domain"
)

// Wire types for API responses. Prices serialize as two-decimal strings
// ("25.00") so clients render them without reformatting.

type productResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Image        string    `json:"image"`
	Description  string    `json:"description,omitempty"`
	Price        string    `json:"price"`
	CountInStock int       `json:"countInStock"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:           p.ID,
		Name:         p.Name,
		Image:        p.Image,
		Description:  p.Description,
		Price:        domain.FormatMoney(p.Price),
		CountInStock: p.CountInStock,
		CreatedAt:    p.CreatedAt,
	}
}

type orderItemResponse struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Price     string `json:"price"`
	Qty       int    `json:"qty"`
}

type orderResponse struct {
	ID              string                 `json:"id"`
	UserID          string                 `json:"userId"`
	OrderItems      []orderItemResponse    `json:"orderItems"`
	ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
	ItemsPrice      string                 `json:"itemsPrice"`
	ShippingPrice   string                 `json:"shippingPrice"`
	TaxPrice        string                 `json:"taxPrice"`
	TotalPrice      string                 `json:"totalPrice"`
	IsPaid          bool                   `json:"isPaid"`
	PaidAt          *time.Time             `json:"paidAt,omitempty"`
	IsDelivered     bool                   `json:"isDelivered"`
	DeliveredAt     *time.Time             `json:"deliveredAt,omitempty"`
	PaymentResult   *domain.PaymentResult  `json:"paymentResult,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
}

func toOrderResponse(o domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, orderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Image:     item.Image,
			Price:     domain.FormatMoney(item.Price),
			Qty:       item.Qty,
		})
	}

	return orderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		OrderItems:      items,
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   o.PaymentMethod,
		ItemsPrice:      domain.FormatMoney(o.ItemsPrice),
		ShippingPrice:   domain.FormatMoney(o.ShippingPrice),
		TaxPrice:        domain.FormatMoney(o.TaxPrice),
		TotalPrice:      domain.FormatMoney(o.TotalPrice),
		IsPaid:          o.IsPaid,
		PaidAt:          o.PaidAt,
		IsDelivered:     o.IsDelivered,
		DeliveredAt:     o.DeliveredAt,
		PaymentResult:   o.PaymentResult,
		CreatedAt:       o.CreatedAt,
	}
}

type authResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	Token   string `json:"token"`
}

func toAuthResponse(u domain.User, token string) authResponse {
	return authResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		IsAdmin: u.IsAdmin,
		Token:   token,
	}
}

type userResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		IsAdmin: u.IsAdmin,
	}
}
