package tui

import "github.com/charmbracelet/bubbles/textinput"

type formPieceModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newFormPieceModel() formPieceModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[0].Focus()

	return formPieceModel{inputs: inputs}
}

func (m formPieceModel) title() string {
	return m.inputs[0].Value()
}

func (m formPieceModel) composer() string {
	return m.inputs[1].Value()
}

func (m formPieceModel) View() string {
	out := "Register piece\n\n"
	out += "Title:    [" + m.inputs[0].View() + "]\n"
	out += "Composer: [" + m.inputs[1].View() + "]\n\n"
	out += "esc cancel  tab next field  enter save"
	return out
}
