// handlers_ops.go implements the operator-facing endpoints: a liveness
// probe and a recent-activity feed. Neither carries authentication.
package main

import (
	"net/http"
	"time"
)

type healthzResponseJSON struct {
	Status        string  `json:"status"`
	Population    int     `json:"population"`
	TotalRequests uint64  `json:"total_requests"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

func (app *application) handleHealthz(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, http.StatusOK, healthzResponseJSON{
		Status:        "ok",
		Population:    app.coord.Len(),
		TotalRequests: app.metrics.TotalRequests.Load(),
		UptimeSeconds: time.Since(app.startedAt).Seconds(),
	})
}

func (app *application) handleDebugRecent(w http.ResponseWriter, r *http.Request) {
	const defaultLimit = 50
	app.writeJSON(w, http.StatusOK, app.activity.Recent(defaultLimit))
}
