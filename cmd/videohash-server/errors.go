// errors.go maps the coordinator's error kinds to HTTP status codes and
// JSON bodies through small named helpers.
package main

import (
	"net/http"

	"github.com/dolr-ai/videohash-indexer/internal/coordinator"
)

func (app *application) invalidHashResponse(w http.ResponseWriter, err error) {
	app.writeErrorResponse(w, http.StatusBadRequest, "Invalid hash format: "+err.Error())
}

func (app *application) duplicateIdentifierResponse(w http.ResponseWriter) {
	app.writeErrorResponse(w, http.StatusBadRequest, coordinator.ErrDuplicateIdentifier.Error())
}

func (app *application) notFoundResponse(w http.ResponseWriter, videoID string) {
	app.writeErrorResponse(w, http.StatusNotFound, "Hash with video_id "+videoID+" not found")
}

func (app *application) badRequestResponse(w http.ResponseWriter, message string) {
	app.writeErrorResponse(w, http.StatusBadRequest, message)
}

func (app *application) internalErrorResponse(w http.ResponseWriter, err error) {
	app.logger.Error("internal error", "error", err)
	app.writeErrorResponse(w, http.StatusInternalServerError, "internal error")
}
