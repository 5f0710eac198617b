package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/akulikov/scoresync/models"
)

// pieceItem pairs a piece entity with its decoded payload so the view
// does not re-unmarshal on every frame.
type pieceItem struct {
	entity models.SyncEntity
	ref    models.PieceRef
}

type listModel struct {
	pieces    []pieceItem
	idx       int
	loading   bool
	syncing   bool
	spinner   spinner.Model
	status    string
	conflicts []models.SyncConflict
	userID    int64
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true}
}

func (m listModel) current() (pieceItem, bool) {
	if len(m.pieces) == 0 || m.idx < 0 || m.idx >= len(m.pieces) {
		return pieceItem{}, false
	}
	return m.pieces[m.idx], true
}

func statusMark(s models.SyncStatus) string {
	switch s {
	case models.SyncStatusPending, models.SyncStatusSyncing:
		return "[*]"
	case models.SyncStatusConflict:
		return "[!]"
	default:
		return "[ ]"
	}
}

func (m listModel) View() string {
	header := titleStyle.Render("ScoreSync — practice journal")
	if m.syncing {
		header += "  " + m.spinner.View() + " syncing"
	}
	out := header + "\n\n"

	if m.loading {
		out += "Loading...\n"
	} else if len(m.pieces) == 0 {
		out += "No pieces registered yet\n"
	} else {
		for i, item := range m.pieces {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			line := item.ref.Title
			if item.ref.Composer != "" {
				line += " — " + item.ref.Composer
			}
			out += fmt.Sprintf("%s%s %s\n", cursor, statusMark(item.entity.SyncStatus), line)
		}
	}

	if len(m.conflicts) > 0 {
		out += "\n" + errorStyle.Render(fmt.Sprintf("%d sync conflict(s):", len(m.conflicts))) + "\n"
		for _, c := range m.conflicts {
			out += fmt.Sprintf("  %s %s/%s\n", c.Type, c.Local.EntityType, c.Local.LocalID)
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("n new piece  p log practice  g set goal  s sync  c copy id  d delete  q quit")
	return out
}
