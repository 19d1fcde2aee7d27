package state

import "github.com/aleksandar-ristic/StarterStore/internal/domain"

// One reducer per slice; every reducer sees every action and ignores the ones
// that are not its own.

func reduceCart(st CartState, a Action) CartState {
	switch act := a.(type) {
	case CartRestored:
		st.Items = act.Items
	case CartItemAdded:
		st.Items = domain.MergeCartItem(st.Items, act.Item)
	case CartItemRemoved:
		st.Items = domain.RemoveCartItem(st.Items, act.ProductID)
	case CartCleared:
		st.Items = nil
	}
	return st
}

func reduceOrderDetails(st OrderDetailsState, a Action) OrderDetailsState {
	switch act := a.(type) {
	case OrderDetailsRequested:
		st = OrderDetailsState{Loading: true}
	case OrderDetailsLoaded:
		st = OrderDetailsState{Order: act.Order}
	case OrderDetailsFailed:
		st = OrderDetailsState{Err: act.Message}
	}
	return st
}

func reduceOrderPay(st MutationState, a Action) MutationState {
	switch act := a.(type) {
	case OrderPayRequested:
		st = MutationState{Loading: true}
	case OrderPaySucceeded:
		st = MutationState{Success: true}
	case OrderPayFailed:
		st = MutationState{Err: act.Message}
	case OrderPayReset:
		st = MutationState{}
	}
	return st
}

func reduceOrderDeliver(st MutationState, a Action) MutationState {
	switch act := a.(type) {
	case OrderDeliverRequested:
		st = MutationState{Loading: true}
	case OrderDeliverSucceeded:
		st = MutationState{Success: true}
	case OrderDeliverFailed:
		st = MutationState{Err: act.Message}
	case OrderDeliverReset:
		st = MutationState{}
	}
	return st
}

func reduceUserLogin(st AuthState, a Action) AuthState {
	switch act := a.(type) {
	case LoginRequested:
		st = AuthState{Loading: true}
	case LoginSucceeded:
		st = AuthState{User: act.User, Success: true}
	case LoginFailed:
		st = AuthState{Err: act.Message}
	case LoggedOut:
		st = AuthState{}
	case RegisterSucceeded:
		// Registration logs the new user in.
		st = AuthState{User: act.User, Success: true}
	}
	return st
}

func reduceUserRegister(st AuthState, a Action) AuthState {
	switch act := a.(type) {
	case RegisterRequested:
		st = AuthState{Loading: true}
	case RegisterSucceeded:
		st = AuthState{User: act.User, Success: true}
	case RegisterFailed:
		st = AuthState{Err: act.Message}
	case LoggedOut:
		st = AuthState{}
	}
	return st
}
