// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The sui-pocket Authors

// Package tui renders the wallet as a Bubble Tea terminal application:
// a setup page on first run, a login page, and the wallet page with key
// import, address display and balance refresh. All wallet decisions
// live in the controller; the pages only render and dispatch.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zeweler/sui-pocket/internal/controller"
	"github.com/zeweler/sui-pocket/internal/i18n"
)

// tickInterval paces the render loop: session expiry checks and the
// non-blocking balance poll both ride on it.
const tickInterval = 250 * time.Millisecond

// RootModel is the page router:
// 1) keeps the active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) runs the tick loop and forces logout on session expiry
// 5) delegates all other messages to the active page
type RootModel struct {
	ctrl  *controller.Controller
	tr    i18n.Translator
	pages map[string]tea.Model

	current     tea.Model
	currentName string
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(ctrl *controller.Controller, tr i18n.Translator, pages map[string]tea.Model, startPage string) RootModel {
	return RootModel{
		ctrl:        ctrl,
		tr:          tr,
		pages:       pages,
		current:     pages[startPage],
		currentName: startPage,
	}
}

func (r RootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd()}
	if r.current != nil {
		cmds = append(cmds, r.current.Init())
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return r, tea.Quit
	}

	if _, ok := msg.(tickMsg); ok {
		if r.ctrl.Tick() && r.currentName == "wallet" {
			r.current = r.pages["login"]
			r.currentName = "login"
			return r, tea.Batch(tickCmd(), func() tea.Msg {
				return sessionEndedMsg{text: r.tr.Tr("wallet_logged_out_message")}
			})
		}

		var cmd tea.Cmd
		if r.current != nil {
			r.current, cmd = r.current.Update(msg)
		}
		return r, tea.Batch(tickCmd(), cmd)
	}

	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.current = next
		r.currentName = nav.Page

		if nav.Payload != nil {
			payload := nav.Payload
			return r, func() tea.Msg { return payload }
		}
		return r, r.current.Init()
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.current == nil {
		return renderPage(r.tr.Tr("app_title"), "", "")
	}
	return r.current.View()
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run assembles the pages and blocks inside the Bubble Tea event loop
// until the user quits.
func Run(ctx context.Context, ctrl *controller.Controller, tr i18n.Translator) error {
	pages := map[string]tea.Model{
		"setup":  NewSetupModel(ctrl, tr),
		"login":  NewLoginModel(ctrl, tr),
		"wallet": NewWalletModel(ctx, ctrl, tr),
	}

	start := "login"
	if ctrl.NeedsSetup() {
		start = "setup"
	}

	program := tea.NewProgram(NewRootModel(ctrl, tr, pages, start), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
