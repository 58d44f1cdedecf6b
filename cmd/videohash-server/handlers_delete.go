// handlers_delete.go implements DELETE /hash/{video_id}.
package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/dolr-ai/videohash-indexer/internal/activity"
	"github.com/dolr-ai/videohash-indexer/internal/coordinator"
	"github.com/dolr-ai/videohash-indexer/internal/obs"
)

func (app *application) handleDelete(w http.ResponseWriter, r *http.Request) {
	videoID := r.PathValue("video_id")
	if videoID == "" {
		app.badRequestResponse(w, "video_id must not be empty")
		return
	}

	fp := obs.Fingerprint(videoID)

	err := app.coord.Delete(videoID)
	if err != nil {
		if errors.Is(err, coordinator.ErrNotFound) {
			app.logger.Info("delete of unknown video_id", "video_id", videoID, "video_fp", fp)
			app.notFoundResponse(w, videoID)
			return
		}
		app.internalErrorResponse(w, err)
		return
	}

	app.logger.Info("hash deleted", "video_id", videoID, "video_fp", fp)
	app.activity.Record(videoID, activity.KindDeleted, "", time.Now())
	app.writeJSON(w, http.StatusOK, deleteResponseJSON{
		Success: true,
		Message: "Hash with video_id " + videoID + " successfully deleted",
	})
}
