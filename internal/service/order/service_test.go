package order

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aleksandar-ristic/StarterStore/internal/domain"
	orderrepo "github.com/aleksandar-ristic/StarterStore/internal/repository/order"
	"github.com/shopspring/decimal"
)

// memoryRepo is a lightweight in-memory order repository for tests.
type memoryRepo struct {
	orders map[string]domain.Order
	nextID int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{orders: make(map[string]domain.Order)}
}

func (r *memoryRepo) Create(_ context.Context, in orderrepo.CreateOrderInput) (*domain.Order, error) {
	r.nextID++
	o := domain.Order{
		ID:              fmt.Sprintf("order-%d", r.nextID),
		UserID:          in.UserID,
		Items:           in.Items,
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   in.PaymentMethod,
		ItemsPrice:      in.ItemsPrice,
		ShippingPrice:   in.ShippingPrice,
		TaxPrice:        in.TaxPrice,
		TotalPrice:      in.TotalPrice,
		CreatedAt:       time.Now(),
	}
	r.orders[o.ID] = o
	clone := o
	return &clone, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := o
	return &clone, nil
}

func (r *memoryRepo) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *memoryRepo) MarkPaid(_ context.Context, id string, paidAt time.Time, result domain.PaymentResult) error {
	o, ok := r.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.IsPaid = true
	o.PaidAt = &paidAt
	o.PaymentResult = &result
	r.orders[id] = o
	return nil
}

func (r *memoryRepo) MarkDelivered(_ context.Context, id string, deliveredAt time.Time) error {
	o, ok := r.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.IsDelivered = true
	o.DeliveredAt = &deliveredAt
	r.orders[id] = o
	return nil
}

func cartItem(id, price string, qty int) domain.CartItem {
	return domain.CartItem{
		ProductID: id,
		Name:      "item " + id,
		Price:     decimal.RequireFromString(price),
		Qty:       qty,
	}
}

func TestCreate_DerivesPricesServerSide(t *testing.T) {
	svc := New(newMemoryRepo())
	ctx := context.Background()

	o, err := svc.Create(ctx, "user-1", CreateInput{
		Items:         []domain.CartItem{cartItem("p1", "89.99", 2)},
		PaymentMethod: "PayPal",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got := domain.FormatMoney(o.ItemsPrice); got != "179.98" {
		t.Fatalf("items price = %s, want 179.98", got)
	}
	if got := domain.FormatMoney(o.ShippingPrice); got != "15.00" {
		t.Fatalf("shipping price = %s, want 15.00", got)
	}
	if got := domain.FormatMoney(o.TaxPrice); got != "27.00" {
		t.Fatalf("tax price = %s, want 27.00", got)
	}
	if got := domain.FormatMoney(o.TotalPrice); got != "221.98" {
		t.Fatalf("total price = %s, want 221.98", got)
	}
	if o.IsPaid || o.IsDelivered {
		t.Fatalf("new order should be unpaid and undelivered: %+v", o)
	}
}

func TestCreate_RejectsBadInput(t *testing.T) {
	svc := New(newMemoryRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, "user-1", CreateInput{PaymentMethod: "PayPal"}); err == nil {
		t.Fatal("expected error for empty items")
	}
	if _, err := svc.Create(ctx, "user-1", CreateInput{
		Items: []domain.CartItem{cartItem("p1", "10.00", 1)},
	}); err == nil {
		t.Fatal("expected error for missing payment method")
	}
	if _, err := svc.Create(ctx, "user-1", CreateInput{
		Items:         []domain.CartItem{cartItem("p1", "10.00", 0)},
		PaymentMethod: "PayPal",
	}); err == nil {
		t.Fatal("expected error for zero quantity")
	}
}

func TestGet_ForeignOrderLooksMissing(t *testing.T) {
	repo := newMemoryRepo()
	svc := New(repo)
	ctx := context.Background()

	o, err := svc.Create(ctx, "owner", CreateInput{
		Items:         []domain.CartItem{cartItem("p1", "10.00", 1)},
		PaymentMethod: "PayPal",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	owner := &domain.User{ID: "owner"}
	stranger := &domain.User{ID: "stranger"}
	admin := &domain.User{ID: "admin", IsAdmin: true}

	if _, err := svc.Get(ctx, owner, o.ID); err != nil {
		t.Fatalf("owner get: %v", err)
	}
	if _, err := svc.Get(ctx, admin, o.ID); err != nil {
		t.Fatalf("admin get: %v", err)
	}
	if _, err := svc.Get(ctx, stranger, o.ID); err != domain.ErrNotFound {
		t.Fatalf("stranger get: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Get(ctx, nil, o.ID); err != domain.ErrNotFound {
		t.Fatalf("anonymous get: expected ErrNotFound, got %v", err)
	}
}

func TestPay_StampsServerClock(t *testing.T) {
	repo := newMemoryRepo()
	svc := New(repo)
	fixed := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	ctx := context.Background()

	o, err := svc.Create(ctx, "owner", CreateInput{
		Items:         []domain.CartItem{cartItem("p1", "10.00", 1)},
		PaymentMethod: "PayPal",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	paid, err := svc.Pay(ctx, &domain.User{ID: "owner"}, o.ID, domain.PaymentResult{
		ID:     "gw-1",
		Status: "COMPLETED",
	})
	if err != nil {
		t.Fatalf("pay: %v", err)
	}
	if !paid.IsPaid {
		t.Fatal("order not marked paid")
	}
	if paid.PaidAt == nil || !paid.PaidAt.Equal(fixed) {
		t.Fatalf("paidAt = %v, want %v", paid.PaidAt, fixed)
	}
	if paid.PaymentResult == nil || paid.PaymentResult.ID != "gw-1" {
		t.Fatalf("payment result not recorded: %+v", paid.PaymentResult)
	}
}

func TestPay_StrangerCannotPay(t *testing.T) {
	repo := newMemoryRepo()
	svc := New(repo)
	ctx := context.Background()

	o, err := svc.Create(ctx, "owner", CreateInput{
		Items:         []domain.CartItem{cartItem("p1", "10.00", 1)},
		PaymentMethod: "PayPal",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.Pay(ctx, &domain.User{ID: "stranger"}, o.ID, domain.PaymentResult{})
	if err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if repo.orders[o.ID].IsPaid {
		t.Fatal("order was paid despite ownership failure")
	}
}

func TestDeliver_StampsServerClock(t *testing.T) {
	repo := newMemoryRepo()
	svc := New(repo)
	fixed := time.Date(2026, 8, 30, 13, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	ctx := context.Background()

	o, err := svc.Create(ctx, "owner", CreateInput{
		Items:         []domain.CartItem{cartItem("p1", "10.00", 1)},
		PaymentMethod: "PayPal",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	delivered, err := svc.Deliver(ctx, o.ID)
	if err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if !delivered.IsDelivered || delivered.DeliveredAt == nil || !delivered.DeliveredAt.Equal(fixed) {
		t.Fatalf("unexpected delivery state: %+v", delivered)
	}

	if _, err := svc.Deliver(ctx, "missing"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound for missing order, got %v", err)
	}
}
