package tui

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/akulikov/scoresync/models"
)

type formEntryModel struct {
	inputs     []textinput.Model
	focus      int
	pieceID    string
	pieceTitle string
	submitting bool
}

func newFormEntryModel(piece pieceItem) formEntryModel {
	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[0].Focus()

	return formEntryModel{
		inputs:     inputs,
		pieceID:    piece.ref.CanonicalID,
		pieceTitle: piece.ref.Title,
	}
}

func (m formEntryModel) toEntry() (models.PracticeEntry, error) {
	minutes, err := strconv.Atoi(strings.TrimSpace(m.inputs[0].Value()))
	if err != nil {
		return models.PracticeEntry{}, errors.New("minutes must be a whole number")
	}

	tempo := 0
	if raw := strings.TrimSpace(m.inputs[1].Value()); raw != "" {
		tempo, err = strconv.Atoi(raw)
		if err != nil {
			return models.PracticeEntry{}, errors.New("tempo must be a whole number")
		}
	}

	return models.PracticeEntry{
		PieceID:         m.pieceID,
		DurationMinutes: minutes,
		Tempo:           tempo,
		Notes:           m.inputs[2].Value(),
		PracticedAt:     time.Now(),
	}, nil
}

func (m formEntryModel) View() string {
	out := "Log practice: " + m.pieceTitle + "\n\n"
	out += "Minutes: [" + m.inputs[0].View() + "]\n"
	out += "Tempo:   [" + m.inputs[1].View() + "]\n"
	out += "Notes:   [" + m.inputs[2].View() + "]\n\n"
	out += "esc cancel  tab next field  enter save"
	return out
}
