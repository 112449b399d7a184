package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zforge/internal/account"
)

// listModel displays saved accounts in a scrollable list.
type listModel struct {
	accounts []account.Account
	cursor   int
	flash    string
}

// deleteAccountMsg requests deletion of an account.
type deleteAccountMsg struct {
	id string
}

// viewAccountMsg requests viewing a specific account.
type viewAccountMsg struct {
	account account.Account
}

func newListModel(accs []account.Account) listModel {
	return listModel{accounts: accs}
}

func (m listModel) Init() tea.Cmd {
	return nil
}

func (m listModel) Update(msg tea.Msg) (listModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m listModel) handleKey(msg tea.KeyMsg) (listModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	if len(m.accounts) == 0 {
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < len(m.accounts)-1 {
			m.cursor++
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		acc := m.accounts[m.cursor]
		return m, func() tea.Msg { return viewAccountMsg{account: acc} }
	}

	if msg.String() == "d" {
		id := m.accounts[m.cursor].ID
		return m, func() tea.Msg { return deleteAccountMsg{id: id} }
	}

	return m, nil
}

func (m listModel) View() string {
	accentStyle := lipgloss.NewStyle().Foreground(zstyle.ZburnAccent).Bold(true)

	s := "\n"

	if len(m.accounts) == 0 {
		s += "  " + zstyle.MutedText.Render("no saved accounts") + "\n"
		s += "\n"
		// reserved flash line (empty for empty state)
		s += "\n"
		return s
	}

	for i, acc := range m.accounts {
		name := truncate(acc.FirstName+" "+acc.LastName, 20)
		email := truncate(acc.Email, 30)
		line := fmt.Sprintf("%-20s %-30s %s", name, email, acc.CreatedAt.Format("2006-01-02"))

		if i == m.cursor {
			s += "  " + accentStyle.Render("▸") + " " + line + "\n"
		} else {
			s += "    " + line + "\n"
		}
	}

	s += "\n"

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}

// truncate shortens s to max characters, counting runes so multibyte
// input is never split mid-character.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
