// metrics.go holds the atomic counters for monitoring the server's health.
package main

import (
	"net/http"
	"sync/atomic"
)

// Metrics holds the atomic counters for monitoring the server's health.
type Metrics struct {
	TotalRequests atomic.Uint64
}

// NewMetrics creates and returns a new Metrics struct.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// withMetrics wraps a handler to count every request it serves.
func (app *application) withMetrics(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		app.metrics.TotalRequests.Add(1)
		next(w, r)
	}
}
