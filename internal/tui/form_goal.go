package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/akulikov/scoresync/models"
)

type formGoalModel struct {
	inputs     []textinput.Model
	focus      int
	pieceID    string
	pieceTitle string
	submitting bool
}

func newFormGoalModel(piece pieceItem) formGoalModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[0].Focus()
	inputs[1].Placeholder = "2026-12-31"

	return formGoalModel{
		inputs:     inputs,
		pieceID:    piece.ref.CanonicalID,
		pieceTitle: piece.ref.Title,
	}
}

func (m formGoalModel) toGoal() (models.Goal, error) {
	goal := models.Goal{
		PieceID:     m.pieceID,
		Description: m.inputs[0].Value(),
	}

	if raw := strings.TrimSpace(m.inputs[1].Value()); raw != "" {
		target, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return models.Goal{}, errors.New("target date must look like 2026-12-31")
		}
		goal.TargetDate = &target
	}

	return goal, nil
}

func (m formGoalModel) View() string {
	out := "Set goal: " + m.pieceTitle + "\n\n"
	out += "Goal:        [" + m.inputs[0].View() + "]\n"
	out += "Target date: [" + m.inputs[1].View() + "]\n\n"
	out += "esc cancel  tab next field  enter save"
	return out
}
