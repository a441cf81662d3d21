package router

// AuthState is the slice of the session the guard needs. It only reads;
// the guard never mutates authentication state.
type AuthState interface {
	IsAuthenticated() bool
}

// Decision is the guard's verdict on a transition: proceed as requested, or
// go to Redirect instead.
type Decision struct {
	Redirect string
}

// Proceed reports whether the transition may continue unchanged.
func (d Decision) Proceed() bool {
	return d.Redirect == ""
}

// Guard gates route transitions on authentication state.
type Guard struct {
	state AuthState
}

func NewGuard(state AuthState) *Guard {
	return &Guard{state: state}
}

// Before is invoked with the requested destination and the current route
// before every transition.
//
//   - Authenticated users are bounced off the login/register pages to home.
//   - Unauthenticated users headed to a protected route are sent to login,
//     with the originally requested path attached as the return target.
//   - Everything else proceeds unchanged.
func (g *Guard) Before(to, from Route) Decision {
	_ = from

	if to.Path == PathLogin || to.Path == PathRegister {
		if g.state.IsAuthenticated() {
			return Decision{Redirect: PathHome}
		}
		return Decision{}
	}

	if to.RequiresAuth() && !g.state.IsAuthenticated() {
		return Decision{Redirect: PathLogin + "?redirect=" + to.Path}
	}

	return Decision{}
}
