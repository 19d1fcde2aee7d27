package state

import (
	"sync"

	"github.com/aleksandar-ristic/StarterStore/internal/domain"
	"github.com/aleksandar-ristic/StarterStore/internal/storefront/api"
)

// CartState holds the cart slice: the merged cart item list.
type CartState struct {
	Items []domain.CartItem
}

// OrderDetailsState holds the latest fetched order. Exactly one of Loading,
// Err and Order is meaningful at a time.
type OrderDetailsState struct {
	Loading bool
	Order   *api.Order
	Err     string
}

// MutationState tracks a fire-and-forget server mutation (pay, deliver).
// Success is transient; screens reset it after reacting to it.
type MutationState struct {
	Loading bool
	Success bool
	Err     string
}

// AuthState tracks login/registration.
type AuthState struct {
	Loading bool
	User    *api.AuthUser
	Success bool
	Err     string
}

// AppState is the whole client store, one named slice per feature.
type AppState struct {
	Cart         CartState
	OrderDetails OrderDetailsState
	OrderPay     MutationState
	OrderDeliver MutationState
	UserLogin    AuthState
	UserRegister AuthState
}

// Store is the single source of truth for rendering. Dispatch is the only
// writer; reads get a copy of the current state.
type Store struct {
	mu    sync.RWMutex
	state AppState
}

func NewStore() *Store {
	return &Store{}
}

// Dispatch applies one action through the slice reducers.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = reduce(s.state, a)
}

// State returns a snapshot of the current application state.
func (s *Store) State() AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func reduce(st AppState, a Action) AppState {
	st.Cart = reduceCart(st.Cart, a)
	st.OrderDetails = reduceOrderDetails(st.OrderDetails, a)
	st.OrderPay = reduceOrderPay(st.OrderPay, a)
	st.OrderDeliver = reduceOrderDeliver(st.OrderDeliver, a)
	st.UserLogin = reduceUserLogin(st.UserLogin, a)
	st.UserRegister = reduceUserRegister(st.UserRegister, a)
	return st
}
