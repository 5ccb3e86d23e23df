// Package router provides HTTP route dispatch for the server.
package router

import (
	"fmt"
	"net/http"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Handler is a function type that handles a matched HTTP request. The
// handler owns the response it writes; a returned error is logged by the
// router and not translated into a status code.
type Handler func(w http.ResponseWriter, r *http.Request) error

type routeKey struct {
	method string
	path   string
}

// Router routes incoming requests to their registered handlers based on
// method and path.
type Router struct {
	handlers sync.Map // routeKey -> Handler
	chain    Middleware
}

// NewRouter creates a new Router. The given middlewares wrap every
// handler registered afterwards, in the given order.
func NewRouter(middlewares ...Middleware) *Router {
	return &Router{
		chain: Chain(middlewares...),
	}
}

// OnRoute registers a new Handler for a specific method and path
// Example:
//
//	router.OnRoute(http.MethodGet, "/query", func(w http.ResponseWriter, r *http.Request) error {
//		fmt.Fprint(w, "hello")
//		return nil
//	})
func (rt *Router) OnRoute(method string, path string, handler Handler) {
	rt.handlers.Store(routeKey{method: method, path: path}, rt.chain(handler))
}

// ServeHTTP dispatches the request to its registered handler. Unknown
// paths answer 404; known paths without a handler for the method answer 405.
func (rt *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	value, ok := rt.handlers.Load(routeKey{method: req.Method, path: req.URL.Path})
	if !ok {
		if rt.pathKnown(req.URL.Path) {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		http.NotFound(w, req)
		return
	}
	handlerFunc := value.(Handler)
	if err := handlerFunc(w, req); err != nil {
		log.WithField("caller", "router").WithError(err).Errorf("Handling %s %s", req.Method, req.URL.Path)
	}
}

// pathKnown reports whether any method is registered for the path.
func (rt *Router) pathKnown(path string) bool {
	known := false
	rt.handlers.Range(func(key, value interface{}) bool {
		if key.(routeKey).path == path {
			known = true
			return false
		}
		return true
	})
	return known
}

// ListRoutes prints all registered routes to stdout.
func (rt *Router) ListRoutes() {
	rt.handlers.Range(func(key, value interface{}) bool {
		k := key.(routeKey)
		fmt.Printf("Route: %s %s\n", k.method, k.path)
		return true
	})
}
