package screens

import (
	"context"
	"net/url"

	"github.com/aleksandar-ristic/StarterStore/internal/storefront/actions"
	"github.com/aleksandar-ristic/StarterStore/internal/storefront/state"
)

// RegisterScreen is the sign-up form. The password confirmation check happens
// locally and a mismatch never reaches the network.
type RegisterScreen struct {
	store   *state.Store
	actions *actions.Dispatcher

	Name            string
	Email           string
	Password        string
	ConfirmPassword string

	redirect string
	localErr string
}

// NewRegisterScreen parses the redirect target from the location query string,
// falling back to the storefront root.
func NewRegisterScreen(store *state.Store, dispatcher *actions.Dispatcher, rawQuery string) *RegisterScreen {
	redirect := "/"
	if values, err := url.ParseQuery(rawQuery); err == nil {
		if r := values.Get("redirect"); r != "" {
			redirect = r
		}
	}
	return &RegisterScreen{store: store, actions: dispatcher, redirect: redirect}
}

// Submit validates the confirmation field and registers the account.
func (s *RegisterScreen) Submit(ctx context.Context) {
	if s.Password != s.ConfirmPassword {
		s.localErr = "Passwords do not match"
		return
	}
	s.localErr = ""
	s.actions.Register(ctx, s.Name, s.Email, s.Password)
}

// RegisterView is what the register screen shows. At most one of Banner and
// Success is set: the local mismatch takes priority over a server error, and
// the success confirmation only appears once neither error applies.
type RegisterView struct {
	Banner     string
	Success    bool
	Loading    bool
	RedirectTo string
}

func (s *RegisterScreen) View() RegisterView {
	st := s.store.State()
	view := RegisterView{Loading: st.UserRegister.Loading}

	switch {
	case s.localErr != "":
		view.Banner = s.localErr
	case st.UserRegister.Err != "":
		view.Banner = st.UserRegister.Err
	case st.UserRegister.Success:
		view.Success = true
	}

	if st.UserLogin.User != nil {
		view.RedirectTo = s.redirect
	}
	return view
}
