// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The sui-pocket Authors

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zeweler/sui-pocket/internal/controller"
	"github.com/zeweler/sui-pocket/internal/i18n"
	"github.com/zeweler/sui-pocket/internal/keystore"
)

// WalletModel is the main page. Before a key is imported it shows the
// key input with live format feedback; once a wallet is loaded it shows
// the address, the balance and the action hotkeys.
type WalletModel struct {
	ctx  context.Context
	ctrl *controller.Controller
	tr   i18n.Translator

	input     textinput.Model
	importing bool
	statusMsg string
	errMsg    string
}

// NewWalletModel creates a [WalletModel] with the private key input
// focused and masked.
func NewWalletModel(ctx context.Context, ctrl *controller.Controller, tr i18n.Translator) *WalletModel {
	input := textinput.New()
	input.Placeholder = tr.Tr("private_key_hint")
	input.CharLimit = 256
	input.Width = 60
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return &WalletModel{
		ctx:   ctx,
		ctrl:  ctrl,
		tr:    tr,
		input: input,
	}
}

func (m *WalletModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [importDoneMsg] — import or restore outcome; a loaded wallet also
//     kicks off an immediate balance refresh.
//   - [copiedMsg]     — clipboard outcome.
//   - [tickMsg]       — drains at most one balance result per tick.
//   - enter           — imports the typed key (no-wallet state only).
//   - r               — requests a balance refresh.
//   - c               — copies the address to the clipboard.
//   - l               — logs out and navigates to the login page.
func (m *WalletModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case importDoneMsg:
		m.importing = false
		if result.err != nil {
			m.errMsg = m.ctrl.ErrorText(result.err)
			return m, nil
		}
		m.errMsg = ""
		m.statusMsg = result.status
		m.input.SetValue("")
		if _, loaded := m.ctrl.Address(); loaded {
			return m, m.cmdRefresh()
		}
		return m, nil

	case copiedMsg:
		if result.err != nil {
			m.errMsg = m.ctrl.ErrorText(result.err)
		} else {
			m.statusMsg = m.tr.Tr("copy_address_button") + " ✓"
		}
		return m, nil

	case tickMsg:
		m.ctrl.PollBalance()
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		_, loaded := m.ctrl.Address()

		if !loaded {
			if keyMsg.String() == "enter" {
				if m.importing {
					return m, nil
				}
				raw := strings.TrimSpace(m.input.Value())
				if raw == "" {
					m.errMsg = m.tr.Tr("invalid_format")
					return m, nil
				}
				m.errMsg = ""
				m.importing = true
				return m, m.cmdImport(raw)
			}

			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		switch keyMsg.String() {
		case "r":
			status, _ := m.ctrl.RequestRefresh(m.ctx)
			m.statusMsg = status
			m.ctrl.ExtendSession()
			return m, nil
		case "c":
			m.ctrl.ExtendSession()
			return m, m.cmdCopy()
		case "l", "esc":
			status := m.ctrl.Logout()
			m.statusMsg = ""
			m.errMsg = ""
			return m, func() tea.Msg {
				return NavigateTo{Page: "login", Payload: sessionEndedMsg{text: status}}
			}
		}
	}

	return m, nil
}

func (m *WalletModel) View() string {
	address, loaded := m.ctrl.Address()
	if !loaded {
		return m.viewImport()
	}
	return m.viewLoaded(address)
}

func (m *WalletModel) viewImport() string {
	var b strings.Builder
	b.WriteString(m.tr.Tr("import_private_key_message"))
	b.WriteString("\n\n[")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if raw := strings.TrimSpace(m.input.Value()); raw != "" {
		b.WriteString("\n")
		b.WriteString(m.tr.Tr("format_status"))
		b.WriteString(" ")
		if format, ok := keystore.FormatHint(raw); ok {
			b.WriteString(statusStyle.Render(format.String() + " — " + m.tr.Tr("valid_format")))
		} else {
			b.WriteString(warnStyle.Render(m.tr.Tr("invalid_format")))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(warnStyle.Render(m.tr.Tr("security_warning_message")))
	b.WriteString("\n")

	if m.importing {
		b.WriteString("\n[" + m.tr.Tr("loading") + "]\n")
	} else {
		b.WriteString("\n[" + m.tr.Tr("import_wallet_button") + "]\n")
	}

	m.appendStatusLines(&b)

	return renderPage(
		m.tr.Tr("import_wallet_title"),
		strings.TrimRight(b.String(), "\n"),
		"enter: "+m.tr.Tr("import_wallet_button"))
}

func (m *WalletModel) viewLoaded(address string) string {
	var b strings.Builder
	b.WriteString(m.tr.Tr("wallet_loaded"))
	b.WriteString("\n\n")

	b.WriteString(m.tr.Tr("network_label"))
	b.WriteString(": ")
	b.WriteString(m.ctrl.Network().Name())
	b.WriteString("\n")

	b.WriteString(m.tr.Tr("address_label"))
	b.WriteString(" ")
	b.WriteString(addressStyle.Render(address))
	b.WriteString("\n")

	b.WriteString(m.tr.Tr("balance_label"))
	b.WriteString(" ")
	if m.ctrl.RefreshPending() {
		b.WriteString(m.tr.Tr("refreshing_balance"))
	} else {
		b.WriteString(m.ctrl.BalanceText())
	}
	b.WriteString("\n")

	if url, ok := m.ctrl.ExplorerURL(); ok {
		b.WriteString("\n")
		b.WriteString(m.tr.Tr("view_explorer"))
		b.WriteString(": ")
		b.WriteString(helpStyle.Render(fitText(url, 70)))
		b.WriteString("\n")
	}

	m.appendStatusLines(&b)

	hotKeys := strings.Join([]string{
		"r: " + m.tr.Tr("refresh_balance_button"),
		"c: " + m.tr.Tr("copy_address_button"),
		"l: " + m.tr.Tr("logout_button"),
	}, " │ ")

	return renderPage(
		m.tr.Tr("app_title"),
		strings.TrimRight(b.String(), "\n"),
		hotKeys)
}

func (m *WalletModel) appendStatusLines(b *strings.Builder) {
	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.statusMsg))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
}

func (m *WalletModel) cmdImport(raw string) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		address, status, err := ctrl.ImportKey(raw)
		return importDoneMsg{address: address, status: status, err: err}
	}
}

func (m *WalletModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	ctrl := m.ctrl
	return func() tea.Msg {
		ctrl.RequestRefresh(ctx)
		return nil
	}
}

func (m *WalletModel) cmdCopy() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		return copiedMsg{err: ctrl.CopyAddress()}
	}
}
