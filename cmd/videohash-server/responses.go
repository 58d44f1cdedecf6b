// responses.go centralizes JSON response encoding behind small named
// helpers on *application rather than scattering json.NewEncoder calls
// across every handler.
package main

import (
	"encoding/json"
	"net/http"
)

type matchDetailsJSON struct {
	VideoID              string  `json:"video_id"`
	SimilarityPercentage float64 `json:"similarity_percentage"`
	IsDuplicate          bool    `json:"is_duplicate"`
}

type searchResponseJSON struct {
	MatchFound   bool              `json:"match_found"`
	MatchDetails *matchDetailsJSON `json:"match_details"`
	HashAdded    bool              `json:"hash_added"`
}

type errorResponseJSON struct {
	Error string `json:"error"`
}

type deleteResponseJSON struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (app *application) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		app.logger.Error("failed to encode response", "error", err)
	}
}

func (app *application) writeErrorResponse(w http.ResponseWriter, status int, message string) {
	app.writeJSON(w, status, errorResponseJSON{Error: message})
}
