package http

import (
	"encoding/json"
	"net/http"

	"github.com/akulikov/scoresync/internal/app"
	"github.com/akulikov/scoresync/internal/logger"
	"github.com/akulikov/scoresync/internal/utils"
	"github.com/akulikov/scoresync/models"
)

// pushChanges accepts one batch of client changes and answers with the
// per-entity resolver verdicts. The X-Idempotency-Key header is echoed back
// so clients can correlate replays; the resolver itself is idempotent via
// checksum comparison, so a replayed batch yields the same outcomes.
func (h *Handler) pushChanges(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.pushChanges").Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	var pushRequest models.PushRequest
	if err := json.NewDecoder(r.Body).Decode(&pushRequest); err != nil {
		log.Err(err).Str("func", "*Handler.pushChanges").Msg(app.MsgInvalidJSONProvided)
		http.Error(w, app.MsgInvalidJSONProvided, http.StatusBadRequest)
		return
	}

	if key := r.Header.Get(models.IdempotencyKeyHeader); key != "" {
		log.Debug().Str("idempotency_key", key).Msg("push batch received")
		w.Header().Set(models.IdempotencyKeyHeader, key)
	}

	response, err := h.services.SyncResolverService.Push(ctx, userID, pushRequest)
	if err != nil {
		log.Err(err).Str("func", "*Handler.pushChanges").Msg("error resolving push batch")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

// pullChanges returns one page of entities changed since the client's
// checkpoint, with a continuation token while more pages remain.
func (h *Handler) pullChanges(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.pullChanges").Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	var pullRequest models.PullRequest
	if err := json.NewDecoder(r.Body).Decode(&pullRequest); err != nil {
		log.Err(err).Str("func", "*Handler.pullChanges").Msg(app.MsgInvalidJSONProvided)
		http.Error(w, app.MsgInvalidJSONProvided, http.StatusBadRequest)
		return
	}

	response, err := h.services.SyncResolverService.Pull(ctx, userID, pullRequest)
	if err != nil {
		log.Err(err).Str("func", "*Handler.pullChanges").Msg("error reading changed entities")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
