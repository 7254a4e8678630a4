// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The sui-pocket Authors

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zeweler/sui-pocket/internal/controller"
	"github.com/zeweler/sui-pocket/internal/i18n"
	"github.com/zeweler/sui-pocket/internal/vault"
)

// SetupModel is the first-run page: two masked password inputs with a
// live strength verdict. Submitting creates the password record and
// drops the user straight into the wallet page.
type SetupModel struct {
	ctrl *controller.Controller
	tr   i18n.Translator

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewSetupModel creates a [SetupModel] with password and confirmation
// inputs, both masked.
func NewSetupModel(ctrl *controller.Controller, tr i18n.Translator) *SetupModel {
	password := textinput.New()
	password.Placeholder = tr.Tr("enter_password")
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'
	password.Focus()

	confirm := textinput.New()
	confirm.Placeholder = tr.Tr("confirm_password")
	confirm.CharLimit = 256
	confirm.Width = 40
	confirm.EchoMode = textinput.EchoPassword
	confirm.EchoCharacter = '*'

	return &SetupModel{
		ctrl:   ctrl,
		tr:     tr,
		inputs: []textinput.Model{password, confirm},
	}
}

func (m *SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [setupDoneMsg] — on success navigates to the wallet page; on
//     failure shows the localized error.
//   - tab/shift+tab  — moves focus between the two inputs.
//   - enter          — dispatches the async setup command.
func (m *SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(setupDoneMsg); ok {
		m.submitting = false
		if done.err != nil {
			m.errMsg = m.ctrl.ErrorText(done.err)
			return m, nil
		}
		m.reset()
		return m, func() tea.Msg {
			return NavigateTo{Page: "wallet"}
		}
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			m.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSetup(m.inputs[0].Value(), m.inputs[1].Value())
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *SetupModel) View() string {
	var b strings.Builder
	b.WriteString(m.tr.Tr("first_run_message"))
	b.WriteString("\n\n")
	b.WriteString(m.tr.Tr("enter_password"))
	b.WriteString(":   [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString(m.tr.Tr("confirm_password"))
	b.WriteString(": [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if pw := m.inputs[0].Value(); pw != "" {
		score := vault.PasswordScore(pw)
		b.WriteString(fmt.Sprintf("\n%s %s\n",
			m.tr.Tr("password_strength_label"),
			vault.PasswordVerdict(score)))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.tr.Tr("password_info")))
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[" + m.tr.Tr("loading") + "]\n")
	} else {
		b.WriteString("\n[" + m.tr.Tr("create_password_button") + "]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(
		m.tr.Tr("app_title"),
		strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter: submit")
}

func (m *SetupModel) cmdSetup(password, confirm string) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		return setupDoneMsg{err: ctrl.SetupPassword(password, confirm)}
	}
}

func (m *SetupModel) reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.errMsg = ""
	m.focus = 0
	m.inputs[0].Focus()
	m.inputs[1].Blur()
}

func (m *SetupModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *SetupModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
