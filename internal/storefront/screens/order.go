package screens

import (
	"context"

	"github.com/aleksandar-ristic/StarterStore/internal/domain"
	"github.com/aleksandar-ristic/StarterStore/internal/storefront/actions"
	"github.com/aleksandar-ristic/StarterStore/internal/storefront/api"
	"github.com/aleksandar-ristic/StarterStore/internal/storefront/state"
	"github.com/shopspring/decimal"
)

type sdkLoader interface {
	PayPalClientID(ctx context.Context) (string, error)
}

// OrderScreen renders one order and drives the pay and deliver flows. The
// payment SDK is loaded lazily, only while the order is still unpaid.
type OrderScreen struct {
	store    *state.Store
	actions  *actions.Dispatcher
	sdk      sdkLoader
	orderID  string
	sdkReady bool
}

func NewOrderScreen(store *state.Store, dispatcher *actions.Dispatcher, sdk sdkLoader, orderID string) *OrderScreen {
	return &OrderScreen{store: store, actions: dispatcher, sdk: sdk, orderID: orderID}
}

// Sync reconciles the screen with the store. It refetches the order when none
// is loaded, when a different order is loaded, or right after a pay or deliver
// succeeded, resetting those flags first so the success is consumed exactly
// once. Otherwise it loads the payment SDK if the order still needs paying.
func (s *OrderScreen) Sync(ctx context.Context) {
	st := s.store.State()
	order := st.OrderDetails.Order

	if order == nil || order.ID != s.orderID || st.OrderPay.Success || st.OrderDeliver.Success {
		s.actions.ResetOrderPay()
		s.actions.ResetOrderDeliver()
		s.actions.GetOrderDetails(ctx, s.orderID)
		return
	}

	if !order.IsPaid && !s.sdkReady {
		if _, err := s.sdk.PayPalClientID(ctx); err != nil {
			return
		}
		s.sdkReady = true
	}
}

// Pay submits the gateway result and refreshes the order.
func (s *OrderScreen) Pay(ctx context.Context, result api.PaymentResult) {
	s.actions.PayOrder(ctx, s.orderID, result)
	s.Sync(ctx)
}

// Deliver marks the order delivered and refreshes it.
func (s *OrderScreen) Deliver(ctx context.Context) {
	s.actions.DeliverOrder(ctx, s.orderID)
	s.Sync(ctx)
}

// OrderView is what the order screen shows. Exactly one of Loading, Err and
// Order is set.
type OrderView struct {
	Loading bool
	Err     string
	Order   *api.Order

	// ItemsPrice is recomputed from the line items so the summary always
	// matches what is listed, even if the order payload drifts.
	ItemsPrice string

	EmptyItemsMessage string
	ShowPayPalButton  bool
	ShowSDKLoader     bool
	ShowDeliverButton bool
	PayLoading        bool
	DeliverLoading    bool
}

func (s *OrderScreen) View() OrderView {
	st := s.store.State()
	details := st.OrderDetails

	if details.Loading {
		return OrderView{Loading: true}
	}
	if details.Err != "" {
		return OrderView{Err: details.Err}
	}
	if details.Order == nil || details.Order.ID != s.orderID {
		return OrderView{Loading: true}
	}

	order := details.Order
	view := OrderView{
		Order:          order,
		ItemsPrice:     domain.FormatMoney(domain.RoundMoney(itemsSubtotal(order.OrderItems))),
		PayLoading:     st.OrderPay.Loading,
		DeliverLoading: st.OrderDeliver.Loading,
	}
	if len(order.OrderItems) == 0 {
		view.EmptyItemsMessage = "Order is empty"
	}
	if !order.IsPaid {
		view.ShowPayPalButton = s.sdkReady
		view.ShowSDKLoader = !s.sdkReady
	}
	if user := st.UserLogin.User; user != nil && user.IsAdmin && order.IsPaid && !order.IsDelivered {
		view.ShowDeliverButton = true
	}
	return view
}

func itemsSubtotal(items []api.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Qty))))
	}
	return total
}
