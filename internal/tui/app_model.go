package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akulikov/scoresync/internal/service"
	"github.com/akulikov/scoresync/models"
)

var ErrUserQuit = errors.New("user quit")

type screen int

const (
	screenList screen = iota
	screenFormEntry
	screenFormGoal
	screenFormPiece
)

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	currentScreen screen

	list      listModel
	formEntry formEntryModel
	formGoal  formGoalModel
	formPiece formPieceModel

	userID        int64
	err           error
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
}

func newAppModel(ctx context.Context, services *service.ClientServices, userID int64) appModel {
	m := appModel{
		ctx:           ctx,
		services:      services,
		currentScreen: screenList,
		list:          newListModel(),
		userID:        userID,
	}
	m.list.userID = userID
	return m
}

func (m appModel) Init() tea.Cmd {
	return m.cmdLoadList()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == "" {
					return m, nil
				}
				return m, m.cmdDeletePiece(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
	case listLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.list.pieces = msg.pieces
		if m.list.idx >= len(m.list.pieces) {
			m.list.idx = len(m.list.pieces) - 1
		}
		if m.list.idx < 0 {
			m.list.idx = 0
		}
		return m, nil
	case syncDoneMsg:
		m.list.syncing = false
		m.list.conflicts = msg.conflicts
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, m.cmdLoadList()
		}
		m.list.status = fmt.Sprintf("Synced: %d pushed, %d pulled, %d conflicts",
			msg.summary.Pushed, msg.summary.Pulled, msg.summary.Conflicts)
		return m, tea.Batch(m.cmdLoadList(), cmdClearStatus())
	case itemSavedMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.currentScreen = screenList
		return m, m.cmdLoadList()
	case pieceSavedMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.currentScreen = screenList
		if len(msg.matches) > 0 {
			best := msg.matches[0]
			m.list.status = fmt.Sprintf("Looks similar to %q (%.0f%% match)",
				best.Candidate.Title, best.Score*100)
			return m, tea.Batch(m.cmdLoadList(), cmdClearStatus())
		}
		return m, m.cmdLoadList()
	case itemDeletedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.pendingDelete = ""
		return m, m.cmdLoadList()
	case copiedMsg:
		m.list.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.list.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenList:
		return m.updateList(msg)
	case screenFormEntry:
		return m.updateFormEntry(msg)
	case screenFormGoal:
		return m.updateFormGoal(msg)
	case screenFormPiece:
		return m.updateFormPiece(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenList:
		body = m.list.View()
	case screenFormEntry:
		body = m.formEntry.View()
	case screenFormGoal:
		body = m.formGoal.View()
	case screenFormPiece:
		body = m.formPiece.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setSubmitting(v bool) {
	m.formEntry.submitting = v
	m.formGoal.submitting = v
	m.formPiece.submitting = v
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.list.idx > 0 {
				m.list.idx--
			}
		case key.Matches(msg, keys.down):
			if m.list.idx < len(m.list.pieces)-1 {
				m.list.idx++
			}
		case key.Matches(msg, keys.newPiece):
			m.formPiece = newFormPieceModel()
			m.currentScreen = screenFormPiece
		case key.Matches(msg, keys.practice):
			item, ok := m.list.current()
			if !ok {
				return m, nil
			}
			m.formEntry = newFormEntryModel(item)
			m.currentScreen = screenFormEntry
		case key.Matches(msg, keys.goal):
			item, ok := m.list.current()
			if !ok {
				return m, nil
			}
			m.formGoal = newFormGoalModel(item)
			m.currentScreen = screenFormGoal
		case key.Matches(msg, keys.sync):
			if m.list.syncing {
				return m, nil
			}
			m.list.syncing = true
			return m, tea.Batch(m.list.spinner.Tick, m.cmdSync())
		case key.Matches(msg, keys.copy):
			item, ok := m.list.current()
			if !ok {
				return m, nil
			}
			return m, cmdCopyToClipboard(item.ref.CanonicalID)
		case key.Matches(msg, keys.delete):
			item, ok := m.list.current()
			if !ok {
				return m, nil
			}
			m.showConfirm = true
			m.confirm.message = item.ref.Title
			m.pendingDelete = item.entity.LocalID
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.list.syncing {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m appModel) updateFormEntry(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.formEntry = focusNextFormEntry(m.formEntry)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.formEntry = focusPrevFormEntry(m.formEntry)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			entry, err := m.formEntry.toEntry()
			if err != nil {
				m.showErrorf(err.Error())
				return m, nil
			}
			m.formEntry.submitting = true
			return m, m.cmdLogPractice(entry)
		}
	}

	var cmd tea.Cmd
	m.formEntry.inputs[m.formEntry.focus], cmd = m.formEntry.inputs[m.formEntry.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateFormGoal(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.formGoal = focusNextFormGoal(m.formGoal)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.formGoal = focusPrevFormGoal(m.formGoal)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if strings.TrimSpace(m.formGoal.inputs[0].Value()) == "" {
				m.showErrorf("Goal description is required")
				return m, nil
			}
			goal, err := m.formGoal.toGoal()
			if err != nil {
				m.showErrorf(err.Error())
				return m, nil
			}
			m.formGoal.submitting = true
			return m, m.cmdSetGoal(goal)
		}
	}

	var cmd tea.Cmd
	m.formGoal.inputs[m.formGoal.focus], cmd = m.formGoal.inputs[m.formGoal.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateFormPiece(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.formPiece = focusNextFormPiece(m.formPiece)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.formPiece = focusPrevFormPiece(m.formPiece)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if strings.TrimSpace(m.formPiece.title()) == "" {
				m.showErrorf("Title is required")
				return m, nil
			}
			m.formPiece.submitting = true
			return m, m.cmdRegisterPiece(m.formPiece.title(), m.formPiece.composer())
		}
	}

	var cmd tea.Cmd
	m.formPiece.inputs[m.formPiece.focus], cmd = m.formPiece.inputs[m.formPiece.focus].Update(msg)
	return m, cmd
}

func (m appModel) cmdLoadList() tea.Cmd {
	ctx := m.ctx
	svc := m.services.JournalService
	userID := m.userID
	return func() tea.Msg {
		entities, err := svc.ListPieces(ctx, userID)
		if err != nil {
			return listLoadedMsg{err: err}
		}

		pieces := make([]pieceItem, 0, len(entities))
		for _, entity := range entities {
			var ref models.PieceRef
			if err := json.Unmarshal(entity.Payload, &ref); err != nil {
				continue
			}
			pieces = append(pieces, pieceItem{entity: entity, ref: ref})
		}
		return listLoadedMsg{pieces: pieces}
	}
}

func (m appModel) cmdSync() tea.Cmd {
	ctx := m.ctx
	svc := m.services.SyncService
	userID := m.userID
	return func() tea.Msg {
		var conflicts []models.SyncConflict
		id := svc.SubscribeConflicts(func(c models.SyncConflict) {
			conflicts = append(conflicts, c)
		})
		defer svc.UnsubscribeConflicts(id)

		summary, err := svc.FullSync(ctx, userID)
		return syncDoneMsg{summary: summary, conflicts: conflicts, err: err}
	}
}

func (m appModel) cmdLogPractice(entry models.PracticeEntry) tea.Cmd {
	ctx := m.ctx
	svc := m.services.JournalService
	userID := m.userID
	return func() tea.Msg {
		_, err := svc.LogPractice(ctx, userID, "", entry)
		return itemSavedMsg{err: err}
	}
}

func (m appModel) cmdSetGoal(goal models.Goal) tea.Cmd {
	ctx := m.ctx
	svc := m.services.JournalService
	userID := m.userID
	return func() tea.Msg {
		_, err := svc.SetGoal(ctx, userID, "", goal)
		return itemSavedMsg{err: err}
	}
}

func (m appModel) cmdRegisterPiece(title, composer string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.JournalService
	userID := m.userID
	return func() tea.Msg {
		_, matches, err := svc.RegisterPiece(ctx, userID, title, composer)
		return pieceSavedMsg{matches: matches, err: err}
	}
}

func (m appModel) cmdDeletePiece(localID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.JournalService
	userID := m.userID
	return func() tea.Msg {
		err := svc.Delete(ctx, userID, models.EntityTypePiece, localID)
		return itemDeletedMsg{err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return itemSavedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNextFormEntry(m formEntryModel) formEntryModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevFormEntry(m formEntryModel) formEntryModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextFormGoal(m formGoalModel) formGoalModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevFormGoal(m formGoalModel) formGoalModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextFormPiece(m formPieceModel) formPieceModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevFormPiece(m formPieceModel) formPieceModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
