// router.go dispatches incoming HTTP requests to handlers by method and
// path pattern, with path parameters (video_id) extracted by net/http's
// ServeMux pattern matching.
package main

import "net/http"

// Router holds the mapping of HTTP routes to their handlers. It is a thin
// wrapper over http.ServeMux so route registration stays a single visible
// list (routes()).
type Router struct {
	mux *http.ServeMux
}

// NewRouter creates a new, empty router.
func NewRouter() *Router {
	return &Router{mux: http.NewServeMux()}
}

// Handle registers a handler for an exact "METHOD /path" pattern.
func (r *Router) Handle(pattern string, handler http.HandlerFunc) {
	r.mux.HandleFunc(pattern, handler)
}

// ServeHTTP makes Router an http.Handler.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// routes creates a new Router and registers all the application's HTTP
// handlers. This is the single source of truth for what routes the server
// supports.
func (app *application) routes() *Router {
	router := NewRouter()

	router.Handle("POST /search", app.withMetrics(app.handleSearch))
	router.Handle("DELETE /hash/{video_id}", app.withMetrics(app.handleDelete))
	router.Handle("GET /healthz", app.handleHealthz)
	router.Handle("GET /debug/recent", app.handleDebugRecent)

	return router
}
