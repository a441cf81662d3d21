// Package router provides the client's route table and the navigation guard
// that gates every transition on authentication state.
package router

import (
	"fmt"
	"strings"

	"github.com/moonui/moonui/internal/common"
)

// Well-known paths.
const (
	PathHome     = "/"
	PathLogin    = "/auth/login"
	PathRegister = "/auth/register"
)

// Meta carries per-route flags. The zero value means the route requires
// authentication and uses the default layout; routes must opt out
// explicitly.
type Meta struct {
	// Public marks a route reachable without authentication.
	Public bool
	// Layout names the shell layout ("blank" for chromeless pages).
	Layout string
}

// Route is a navigable destination.
type Route struct {
	Path string
	Meta Meta
}

// RequiresAuth reports whether the route is gated on authentication.
func (r Route) RequiresAuth() bool {
	return !r.Meta.Public
}

// Router resolves paths to registered routes and runs the guard on every
// transition.
type Router struct {
	routes  map[string]Route
	guard   *Guard
	current Route
}

func New(guard *Guard) *Router {
	r := &Router{routes: make(map[string]Route), guard: guard}
	r.current = Route{Path: PathHome}
	return r
}

// Handle registers a route. Registering the same path twice replaces the
// earlier entry.
func (r *Router) Handle(route Route) {
	r.routes[route.Path] = route
}

// Resolve returns the registered route for path, ignoring any query string.
func (r *Router) Resolve(path string) (Route, error) {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	route, ok := r.routes[path]
	if !ok {
		return Route{}, fmt.Errorf("route %q: %w", path, common.ErrorNotFound)
	}
	return route, nil
}

// Navigate runs the guard for a transition to path and moves to the
// resulting destination, following at most one redirect. It returns the
// route actually landed on.
func (r *Router) Navigate(path string) (Route, error) {
	to, err := r.Resolve(path)
	if err != nil {
		return Route{}, err
	}

	decision := r.guard.Before(to, r.current)
	if decision.Redirect != "" {
		to, err = r.Resolve(decision.Redirect)
		if err != nil {
			return Route{}, err
		}
	}

	r.current = to
	return to, nil
}

// Current returns the route the router last landed on.
func (r *Router) Current() Route {
	return r.current
}
