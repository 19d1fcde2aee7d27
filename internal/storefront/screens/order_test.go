package screens

import (
	"context"
	"errors"
	"testing"

	"github.com/aleksandar-ristic/StarterStore/internal/domain"
	"github.com/aleksandar-ristic/StarterStore/internal/storefront/actions"
	"github.com/aleksandar-ristic/StarterStore/internal/storefront/api"
	"github.com/aleksandar-ristic/StarterStore/internal/storefront/state"
	"github.com/shopspring/decimal"
)

// stubClient fakes the API for screen tests. Orders mutate in place so a
// refetch observes pay and deliver transitions.
type stubClient struct {
	order         *api.Order
	orderErr      error
	user          *api.AuthUser
	authErr       error
	registerCalls int
	getOrderCalls int
}

func (s *stubClient) GetProduct(_ context.Context, _ string) (*api.Product, error) {
	return nil, errors.New("not implemented")
}

func (s *stubClient) CreateOrder(_ context.Context, _ api.CreateOrderRequest) (*api.Order, error) {
	return s.order, s.orderErr
}

func (s *stubClient) GetOrder(_ context.Context, _ string) (*api.Order, error) {
	s.getOrderCalls++
	if s.orderErr != nil {
		return nil, s.orderErr
	}
	clone := *s.order
	return &clone, nil
}

func (s *stubClient) PayOrder(_ context.Context, _ string, result api.PaymentResult) (*api.Order, error) {
	if s.orderErr != nil {
		return nil, s.orderErr
	}
	s.order.IsPaid = true
	s.order.PaymentResult = &result
	return s.order, nil
}

func (s *stubClient) DeliverOrder(_ context.Context, _ string) (*api.Order, error) {
	if s.orderErr != nil {
		return nil, s.orderErr
	}
	s.order.IsDelivered = true
	return s.order, nil
}

func (s *stubClient) Register(_ context.Context, name, email, _ string) (*api.AuthUser, error) {
	s.registerCalls++
	if s.authErr != nil {
		return nil, s.authErr
	}
	if s.user != nil {
		return s.user, nil
	}
	return &api.AuthUser{ID: "u1", Name: name, Email: email, Token: "tok"}, nil
}

func (s *stubClient) Login(_ context.Context, _, _ string) (*api.AuthUser, error) {
	return s.user, s.authErr
}

func (s *stubClient) SetToken(_ string) {}

type stubSDK struct {
	calls int
	err   error
}

func (s *stubSDK) PayPalClientID(_ context.Context) (string, error) {
	s.calls++
	return "sb", s.err
}

type memoryCart struct {
	items []domain.CartItem
}

func (c *memoryCart) Load(_ context.Context) ([]domain.CartItem, error) {
	return c.items, nil
}

func (c *memoryCart) Save(_ context.Context, items []domain.CartItem) error {
	c.items = items
	return nil
}

func (c *memoryCart) Clear(_ context.Context) error {
	c.items = nil
	return nil
}

func unpaidOrder(id string) *api.Order {
	return &api.Order{
		ID: id,
		OrderItems: []api.OrderItem{
			{ProductID: "p1", Name: "item", Price: decimal.RequireFromString("19.999"), Qty: 1},
			{ProductID: "p2", Name: "item", Price: decimal.RequireFromString("5.001"), Qty: 1},
		},
	}
}

func newOrderScreen(client *stubClient, sdk *stubSDK, orderID string) (*OrderScreen, *state.Store) {
	store := state.NewStore()
	dispatcher := actions.NewDispatcher(store, client, &memoryCart{})
	return NewOrderScreen(store, dispatcher, sdk, orderID), store
}

func TestOrderScreen_FetchesThenLoadsSDK(t *testing.T) {
	client := &stubClient{order: unpaidOrder("order-1")}
	sdk := &stubSDK{}
	screen, _ := newOrderScreen(client, sdk, "order-1")
	ctx := context.Background()

	screen.Sync(ctx)
	if client.getOrderCalls != 1 {
		t.Fatalf("expected one fetch, got %d", client.getOrderCalls)
	}
	if sdk.calls != 0 {
		t.Fatal("SDK loaded before the order was known")
	}
	if view := screen.View(); !view.ShowSDKLoader || view.ShowPayPalButton {
		t.Fatalf("expected SDK loader before SDK is ready: %+v", view)
	}

	screen.Sync(ctx)
	if sdk.calls != 1 {
		t.Fatalf("expected one SDK load, got %d", sdk.calls)
	}
	if client.getOrderCalls != 1 {
		t.Fatalf("expected no refetch on second sync, got %d", client.getOrderCalls)
	}

	view := screen.View()
	if !view.ShowPayPalButton || view.ShowSDKLoader {
		t.Fatalf("expected pay button once SDK is ready: %+v", view)
	}
	if view.ItemsPrice != "25.00" {
		t.Fatalf("items price = %s, want 25.00", view.ItemsPrice)
	}

	screen.Sync(ctx)
	if sdk.calls != 1 {
		t.Fatalf("SDK loaded again: %d calls", sdk.calls)
	}
}

func TestOrderScreen_PaidOrderSkipsSDK(t *testing.T) {
	order := unpaidOrder("order-1")
	order.IsPaid = true
	client := &stubClient{order: order}
	sdk := &stubSDK{}
	screen, _ := newOrderScreen(client, sdk, "order-1")
	ctx := context.Background()

	screen.Sync(ctx)
	screen.Sync(ctx)

	if sdk.calls != 0 {
		t.Fatalf("SDK loaded for a paid order: %d calls", sdk.calls)
	}
	if view := screen.View(); view.ShowPayPalButton || view.ShowSDKLoader {
		t.Fatalf("paid order should show no payment controls: %+v", view)
	}
}

func TestOrderScreen_PayRefetchesAndResets(t *testing.T) {
	client := &stubClient{order: unpaidOrder("order-1")}
	screen, store := newOrderScreen(client, &stubSDK{}, "order-1")
	ctx := context.Background()

	screen.Sync(ctx)
	screen.Sync(ctx)

	screen.Pay(ctx, api.PaymentResult{ID: "gw-1", Status: "COMPLETED"})

	st := store.State()
	if st.OrderPay.Success {
		t.Fatal("pay success flag not consumed by the refetch")
	}
	view := screen.View()
	if view.Order == nil || !view.Order.IsPaid {
		t.Fatalf("refetched order not paid: %+v", view.Order)
	}
	if view.ShowPayPalButton {
		t.Fatal("pay button still shown after payment")
	}
}

func TestOrderScreen_MismatchedOrderRefetches(t *testing.T) {
	client := &stubClient{order: unpaidOrder("order-2")}
	screen, store := newOrderScreen(client, &stubSDK{}, "order-2")

	store.Dispatch(state.OrderDetailsLoaded{Order: unpaidOrder("order-1")})

	screen.Sync(context.Background())
	if client.getOrderCalls != 1 {
		t.Fatalf("expected refetch for mismatched order, got %d calls", client.getOrderCalls)
	}
	if got := store.State().OrderDetails.Order.ID; got != "order-2" {
		t.Fatalf("loaded order %s, want order-2", got)
	}
}

func TestOrderScreen_ErrorView(t *testing.T) {
	client := &stubClient{orderErr: errors.New("Order not found")}
	screen, _ := newOrderScreen(client, &stubSDK{}, "missing")

	screen.Sync(context.Background())

	view := screen.View()
	if view.Err != "Order not found" {
		t.Fatalf("err = %q", view.Err)
	}
	if view.Loading || view.Order != nil {
		t.Fatalf("error view should show nothing else: %+v", view)
	}
}

func TestOrderScreen_DeliverButtonGating(t *testing.T) {
	order := unpaidOrder("order-1")
	order.IsPaid = true
	client := &stubClient{order: order}
	screen, store := newOrderScreen(client, &stubSDK{}, "order-1")
	ctx := context.Background()

	screen.Sync(ctx)
	if screen.View().ShowDeliverButton {
		t.Fatal("deliver button shown to anonymous viewer")
	}

	store.Dispatch(state.LoginSucceeded{User: &api.AuthUser{ID: "u1"}})
	if screen.View().ShowDeliverButton {
		t.Fatal("deliver button shown to non-admin")
	}

	store.Dispatch(state.LoginSucceeded{User: &api.AuthUser{ID: "u2", IsAdmin: true}})
	if !screen.View().ShowDeliverButton {
		t.Fatal("deliver button hidden from admin on a paid order")
	}

	screen.Deliver(ctx)
	view := screen.View()
	if view.Order == nil || !view.Order.IsDelivered {
		t.Fatalf("refetched order not delivered: %+v", view.Order)
	}
	if view.ShowDeliverButton {
		t.Fatal("deliver button still shown after delivery")
	}
}

func TestOrderScreen_EmptyOrderMessage(t *testing.T) {
	client := &stubClient{order: &api.Order{ID: "order-1", IsPaid: true}}
	screen, _ := newOrderScreen(client, &stubSDK{}, "order-1")

	screen.Sync(context.Background())

	if got := screen.View().EmptyItemsMessage; got != "Order is empty" {
		t.Fatalf("empty message = %q", got)
	}
}
