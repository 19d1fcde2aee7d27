package state

import (
	"github.com/aleksandar-ristic/StarterStore/internal/domain"
	"github.com/aleksandar-ristic/StarterStore/internal/storefront/api"
)

// Action is a tagged variant consumed by the slice reducers.
type Action interface {
	isAction()
}

// Cart slice actions.

type CartRestored struct{ Items []domain.CartItem }

type CartItemAdded struct{ Item domain.CartItem }

type CartItemRemoved struct{ ProductID string }

type CartCleared struct{}

// Order details slice actions.

type OrderDetailsRequested struct{}

type OrderDetailsLoaded struct{ Order *api.Order }

type OrderDetailsFailed struct{ Message string }

// Order pay slice actions.

type OrderPayRequested struct{}

type OrderPaySucceeded struct{}

type OrderPayFailed struct{ Message string }

type OrderPayReset struct{}

// Order deliver slice actions.

type OrderDeliverRequested struct{}

type OrderDeliverSucceeded struct{}

type OrderDeliverFailed struct{ Message string }

type OrderDeliverReset struct{}

// User login slice actions.

type LoginRequested struct{}

type LoginSucceeded struct{ User *api.AuthUser }

type LoginFailed struct{ Message string }

type LoggedOut struct{}

// User register slice actions.

type RegisterRequested struct{}

type RegisterSucceeded struct{ User *api.AuthUser }

type RegisterFailed struct{ Message string }

func (CartRestored) isAction()          {}
func (CartItemAdded) isAction()         {}
func (CartItemRemoved) isAction()       {}
func (CartCleared) isAction()           {}
func (OrderDetailsRequested) isAction() {}
func (OrderDetailsLoaded) isAction()    {}
func (OrderDetailsFailed) isAction()    {}
func (OrderPayRequested) isAction()     {}
func (OrderPaySucceeded) isAction()     {}
func (OrderPayFailed) isAction()        {}
func (OrderPayReset) isAction()         {}
func (OrderDeliverRequested) isAction() {}
func (OrderDeliverSucceeded) isAction() {}
func (OrderDeliverFailed) isAction()    {}
func (OrderDeliverReset) isAction()     {}
func (LoginRequested) isAction()        {}
func (LoginSucceeded) isAction()        {}
func (LoginFailed) isAction()           {}
func (LoggedOut) isAction()             {}
func (RegisterRequested) isAction()     {}
func (RegisterSucceeded) isAction()     {}
func (RegisterFailed) isAction()        {}
