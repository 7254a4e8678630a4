// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The sui-pocket Authors

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zeweler/sui-pocket/internal/controller"
	"github.com/zeweler/sui-pocket/internal/i18n"
)

// LoginModel is the returning-user page: a single masked password
// input. A successful login navigates to the wallet page carrying the
// restore status as payload.
type LoginModel struct {
	ctrl *controller.Controller
	tr   i18n.Translator

	input      textinput.Model
	submitting bool
	errMsg     string
	infoMsg    string
}

// NewLoginModel creates a [LoginModel] with a masked password input.
func NewLoginModel(ctrl *controller.Controller, tr i18n.Translator) *LoginModel {
	input := textinput.New()
	input.Placeholder = tr.Tr("enter_password")
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return &LoginModel{
		ctrl:  ctrl,
		tr:    tr,
		input: input,
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [loginDoneMsg]  — on success navigates to the wallet page with
//     the restore status as payload; on failure shows the error.
//   - [sessionEndedMsg] — shows why the user is back here (logout,
//     expired session).
//   - enter           — dispatches the async login command.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case loginDoneMsg:
		m.submitting = false
		if result.err != nil {
			m.errMsg = m.ctrl.ErrorText(result.err)
			return m, nil
		}
		m.input.SetValue("")
		m.errMsg = ""
		status := result.status
		return m, func() tea.Msg {
			return NavigateTo{Page: "wallet", Payload: importDoneMsg{status: status}}
		}
	case sessionEndedMsg:
		m.infoMsg = result.text
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		if m.submitting {
			return m, nil
		}
		m.errMsg = ""
		m.submitting = true
		return m, m.cmdLogin(m.input.Value())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(m.tr.Tr("login_message"))
	b.WriteString("\n\n")
	b.WriteString(m.tr.Tr("enter_password"))
	b.WriteString(": [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[" + m.tr.Tr("loading") + "]\n")
	} else {
		b.WriteString("\n[" + m.tr.Tr("login_button") + "]\n")
	}

	if m.infoMsg != "" {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render(m.infoMsg))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(
		m.tr.Tr("login_title"),
		strings.TrimRight(b.String(), "\n"),
		"enter: "+m.tr.Tr("login_button"))
}

func (m *LoginModel) cmdLogin(password string) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		status, err := ctrl.Login(password)
		return loginDoneMsg{status: status, err: err}
	}
}
