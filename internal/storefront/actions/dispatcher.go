package actions

import (
	"context"
	"errors"

	"github.com/aleksandar-ristic/StarterStore/internal/domain"
	"github.com/aleksandar-ristic/StarterStore/internal/storefront/api"
	"github.com/aleksandar-ristic/StarterStore/internal/storefront/cartstore"
	"github.com/aleksandar-ristic/StarterStore/internal/storefront/state"
)

// backend is the slice of the API client the dispatcher uses.
type backend interface {
	GetProduct(ctx context.Context, id string) (*api.Product, error)
	CreateOrder(ctx context.Context, in api.CreateOrderRequest) (*api.Order, error)
	GetOrder(ctx context.Context, id string) (*api.Order, error)
	PayOrder(ctx context.Context, id string, result api.PaymentResult) (*api.Order, error)
	DeliverOrder(ctx context.Context, id string) (*api.Order, error)
	Register(ctx context.Context, name, email, password string) (*api.AuthUser, error)
	Login(ctx context.Context, email, password string) (*api.AuthUser, error)
	SetToken(token string)
}

var ErrOutOfStock = errors.New("product is out of stock")

// Dispatcher runs the asynchronous flows: call the API, dispatch the outcome
// into the store, and keep the persisted cart in step with the cart slice.
type Dispatcher struct {
	store  *state.Store
	client backend
	cart   cartstore.Storage
}

func NewDispatcher(store *state.Store, client backend, cart cartstore.Storage) *Dispatcher {
	return &Dispatcher{store: store, client: client, cart: cart}
}

// RestoreCart loads the persisted cart into the store, typically at startup.
func (d *Dispatcher) RestoreCart(ctx context.Context) error {
	items, err := d.cart.Load(ctx)
	if err != nil {
		return err
	}
	d.store.Dispatch(state.CartRestored{Items: items})
	return nil
}

// AddToCart fetches the live product, snapshots it into a cart item and merges
// it into the cart. The quantity is clamped to the available stock.
func (d *Dispatcher) AddToCart(ctx context.Context, productID string, qty int) error {
	product, err := d.client.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	if product.CountInStock < 1 {
		return ErrOutOfStock
	}
	if qty < 1 {
		qty = 1
	}
	if qty > product.CountInStock {
		qty = product.CountInStock
	}

	d.store.Dispatch(state.CartItemAdded{Item: domain.CartItem{
		ProductID:    product.ID,
		Name:         product.Name,
		Image:        product.Image,
		Price:        product.Price,
		CountInStock: product.CountInStock,
		Qty:          qty,
	}})
	return d.persistCart(ctx)
}

// RemoveFromCart drops the product from the cart. Removing a product that is
// not in the cart is a no-op.
func (d *Dispatcher) RemoveFromCart(ctx context.Context, productID string) error {
	d.store.Dispatch(state.CartItemRemoved{ProductID: productID})
	return d.persistCart(ctx)
}

func (d *Dispatcher) persistCart(ctx context.Context) error {
	return d.cart.Save(ctx, d.store.State().Cart.Items)
}

// CreateOrder places an order from the current cart and clears the cart on
// success.
func (d *Dispatcher) CreateOrder(ctx context.Context, address domain.ShippingAddress, paymentMethod string) (*api.Order, error) {
	items := d.store.State().Cart.Items
	order, err := d.client.CreateOrder(ctx, api.CreateOrderRequest{
		OrderItems:      items,
		ShippingAddress: address,
		PaymentMethod:   paymentMethod,
	})
	if err != nil {
		return nil, err
	}

	d.store.Dispatch(state.CartCleared{})
	if err := d.cart.Clear(ctx); err != nil {
		return order, err
	}
	return order, nil
}

// GetOrderDetails fetches one order into the order details slice.
func (d *Dispatcher) GetOrderDetails(ctx context.Context, orderID string) {
	d.store.Dispatch(state.OrderDetailsRequested{})
	order, err := d.client.GetOrder(ctx, orderID)
	if err != nil {
		d.store.Dispatch(state.OrderDetailsFailed{Message: err.Error()})
		return
	}
	d.store.Dispatch(state.OrderDetailsLoaded{Order: order})
}

// PayOrder records a gateway payment result against the order.
func (d *Dispatcher) PayOrder(ctx context.Context, orderID string, result api.PaymentResult) {
	d.store.Dispatch(state.OrderPayRequested{})
	if _, err := d.client.PayOrder(ctx, orderID, result); err != nil {
		d.store.Dispatch(state.OrderPayFailed{Message: err.Error()})
		return
	}
	d.store.Dispatch(state.OrderPaySucceeded{})
}

// DeliverOrder marks the order delivered. Admin only on the server side.
func (d *Dispatcher) DeliverOrder(ctx context.Context, orderID string) {
	d.store.Dispatch(state.OrderDeliverRequested{})
	if _, err := d.client.DeliverOrder(ctx, orderID); err != nil {
		d.store.Dispatch(state.OrderDeliverFailed{Message: err.Error()})
		return
	}
	d.store.Dispatch(state.OrderDeliverSucceeded{})
}

func (d *Dispatcher) ResetOrderPay() {
	d.store.Dispatch(state.OrderPayReset{})
}

func (d *Dispatcher) ResetOrderDeliver() {
	d.store.Dispatch(state.OrderDeliverReset{})
}

// Login authenticates and stores the session token on the client.
func (d *Dispatcher) Login(ctx context.Context, email, password string) {
	d.store.Dispatch(state.LoginRequested{})
	user, err := d.client.Login(ctx, email, password)
	if err != nil {
		d.store.Dispatch(state.LoginFailed{Message: err.Error()})
		return
	}
	d.client.SetToken(user.Token)
	d.store.Dispatch(state.LoginSucceeded{User: user})
}

// Register creates an account. Success also logs the new user in.
func (d *Dispatcher) Register(ctx context.Context, name, email, password string) {
	d.store.Dispatch(state.RegisterRequested{})
	user, err := d.client.Register(ctx, name, email, password)
	if err != nil {
		d.store.Dispatch(state.RegisterFailed{Message: err.Error()})
		return
	}
	d.client.SetToken(user.Token)
	d.store.Dispatch(state.RegisterSucceeded{User: user})
}

// Logout clears the session token and the auth slices.
func (d *Dispatcher) Logout() {
	d.client.SetToken("")
	d.store.Dispatch(state.LoggedOut{})
}
