package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zforge/internal/account"
)

// emailModel collects the temporary email address for the new account.
// Entering the view opens the temp-mail provider in the browser so the
// user can grab an address to paste here.
type emailModel struct {
	input       textinput.Model
	tempMailURL string
	hint        string
	errMsg      string
}

// emailSubmitMsg carries a validated temp-mail address to the root.
type emailSubmitMsg struct {
	email string
}

// browserMsg reports the outcome of an attempt to open the browser.
type browserMsg struct {
	err error
}

func newEmailModel(tempMailURL string) emailModel {
	ti := textinput.New()
	ti.Placeholder = "name@temp-mail.org"
	ti.Focus()
	ti.CharLimit = 254
	ti.Width = 50

	return emailModel{
		input:       ti,
		tempMailURL: tempMailURL,
	}
}

func (m emailModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, openBrowserCmd(m.tempMailURL))
}

// openBrowserCmd opens url in the default browser off the update loop.
func openBrowserCmd(url string) tea.Cmd {
	return func() tea.Msg {
		return browserMsg{err: openBrowser(url)}
	}
}

func (m emailModel) Update(msg tea.Msg) (emailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		if key.Matches(msg, zstyle.KeyBack) {
			return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
		}

		if msg.String() == "ctrl+o" {
			return m, openBrowserCmd(m.tempMailURL)
		}

		if key.Matches(msg, zstyle.KeyEnter) {
			return m.handleSubmit()
		}

	case browserMsg:
		if msg.err != nil {
			m.hint = "could not open browser — visit " + m.tempMailURL + " manually"
		} else {
			m.hint = "opened " + m.tempMailURL
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m emailModel) handleSubmit() (emailModel, tea.Cmd) {
	email := m.input.Value()
	if !account.IsValidEmail(email) {
		m.errMsg = "invalid email format"
		return m, nil
	}

	m.errMsg = ""
	return m, func() tea.Msg {
		return emailSubmitMsg{email: email}
	}
}

func (m emailModel) View() string {
	s := "\n  paste your temporary email address:\n\n"
	s += fmt.Sprintf("  %s\n\n", m.input.View())

	if m.hint != "" {
		s += "  " + zstyle.MutedText.Render(m.hint) + "\n"
	} else {
		s += "\n"
	}

	// always reserve a line for errors to prevent layout shift
	if m.errMsg != "" {
		s += "  " + zstyle.StatusErr.Render(m.errMsg) + "\n"
	} else {
		s += "\n"
	}

	return s
}
