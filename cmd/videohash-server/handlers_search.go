// handlers_search.go implements POST /search: a single request that
// reports a near-duplicate if one exists, and otherwise commits the
// submitted hash to the index.
package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dolr-ai/videohash-indexer/internal/activity"
	"github.com/dolr-ai/videohash-indexer/internal/coordinator"
	"github.com/dolr-ai/videohash-indexer/internal/obs"
)

type searchRequestJSON struct {
	VideoID string `json:"video_id"`
	Hash    string `json:"hash"`
}

func (app *application) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequestJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.badRequestResponse(w, "invalid request body: "+err.Error())
		return
	}
	if req.VideoID == "" {
		app.badRequestResponse(w, "video_id must not be empty")
		return
	}

	// The full video_id is logged once here; later lines for the same
	// request carry only the short fingerprint.
	fp := obs.Fingerprint(req.VideoID)
	app.logger.Info("search admitted", "video_id", req.VideoID, "video_fp", fp)

	verdict, err := app.coord.SearchOrInsert(req.VideoID, req.Hash)
	if err != nil {
		app.logger.Info("search rejected", "video_fp", fp, "error", err)
		app.recordError(req.VideoID, err)
		switch {
		case errors.Is(err, coordinator.ErrInvalidHash):
			app.invalidHashResponse(w, err)
		case errors.Is(err, coordinator.ErrDuplicateIdentifier):
			app.duplicateIdentifierResponse(w)
		default:
			app.internalErrorResponse(w, err)
		}
		return
	}

	if verdict.MatchFound {
		app.logger.Info("near-duplicate found",
			"video_fp", fp,
			"matched_video_id", verdict.Match.VideoID,
			"similarity", verdict.Match.SimilarityPercentage,
			"is_duplicate", verdict.Match.IsDuplicate,
		)
		app.activity.Record(req.VideoID, activity.KindMatched, verdict.Match.VideoID, time.Now())
		app.writeJSON(w, http.StatusOK, searchResponseJSON{
			MatchFound: true,
			MatchDetails: &matchDetailsJSON{
				VideoID:              verdict.Match.VideoID,
				SimilarityPercentage: verdict.Match.SimilarityPercentage,
				IsDuplicate:          verdict.Match.IsDuplicate,
			},
			HashAdded: false,
		})
		return
	}

	app.logger.Info("hash added", "video_fp", fp)
	app.activity.Record(req.VideoID, activity.KindAdded, "", time.Now())
	app.writeJSON(w, http.StatusOK, searchResponseJSON{
		MatchFound:   false,
		MatchDetails: nil,
		HashAdded:    true,
	})
}

func (app *application) recordError(videoID string, err error) {
	app.activity.Record(videoID, activity.KindError, err.Error(), time.Now())
}
