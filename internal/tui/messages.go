package tui

import (
	"github.com/akulikov/scoresync/internal/score"
	"github.com/akulikov/scoresync/internal/service"
	"github.com/akulikov/scoresync/models"
)

type listLoadedMsg struct {
	pieces []pieceItem
	err    error
}

type syncDoneMsg struct {
	summary   service.SyncSummary
	conflicts []models.SyncConflict
	err       error
}

type itemSavedMsg struct {
	err error
}

type pieceSavedMsg struct {
	matches []score.Match
	err     error
}

type itemDeletedMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
