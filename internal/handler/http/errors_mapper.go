package http

import (
	"errors"
	"net/http"

	"github.com/akulikov/scoresync/internal/service"
	"github.com/akulikov/scoresync/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidPushRequest:    http.StatusBadRequest,
	service.ErrInvalidPullRequest:    http.StatusBadRequest,
	service.ErrInvalidSyncToken:      http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,

	store.ErrEntityNotFound:     http.StatusNotFound,
	store.ErrEntityNotSaved:     http.StatusInternalServerError,
	store.ErrTransientStorage:   http.StatusServiceUnavailable,
	store.ErrOperationNotFound:  http.StatusNotFound,
	store.ErrCheckpointNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
