package internal

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
)

// Router is the interface handlers use to declare routes.
type Router interface {
	// GET registers a handler for GET requests.
	GET(path string, h HandlerFunc, mw ...Middleware)

	// POST registers a handler for POST requests.
	POST(path string, h HandlerFunc, mw ...Middleware)
}

// routerAdapter wraps chi.Router to implement the Router interface.
type routerAdapter struct {
	router chi.Router
	app    *App
}

func (r *routerAdapter) GET(path string, h HandlerFunc, mw ...Middleware) {
	r.router.Get(path, r.wrap(h, mw...))
}

func (r *routerAdapter) POST(path string, h HandlerFunc, mw ...Middleware) {
	r.router.Post(path, r.wrap(h, mw...))
}

func (r *routerAdapter) wrap(h HandlerFunc, mw ...Middleware) http.HandlerFunc {
	// Last registered runs first.
	for _, m := range slices.Backward(mw) {
		h = m(h)
	}
	return r.app.adaptHandler(h)
}

// adaptHandler converts a HandlerFunc into an http.HandlerFunc that routes
// returned errors to the app's error handler.
func (a *App) adaptHandler(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		rw := wrapResponseWriter(w)
		if err := h(rw, req); err != nil {
			a.handleError(rw, req, err)
		}
	}
}

// adaptMiddleware converts a Middleware into chi's http.Handler-based signature.
func (a *App) adaptMiddleware(mw Middleware) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		wrapped := mw(func(w http.ResponseWriter, req *http.Request) error {
			next.ServeHTTP(w, req)
			return nil
		})
		return a.adaptHandler(wrapped)
	}
}
