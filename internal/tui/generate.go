package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zforge/internal/account"
)

// accountField represents a labeled field for display and selection.
type accountField struct {
	label string
	value string
}

// generateModel shows a generated account and guides the user through
// copying each field into the signup form.
type generateModel struct {
	account   account.Account
	fields    []accountField
	countries []string
	signupURL string
	cursor    int
	flash     string
	flashAt   time.Time
}

// saveAccountMsg requests saving the current account.
type saveAccountMsg struct {
	account account.Account
}

// accountSavedMsg confirms the account was saved.
type accountSavedMsg struct{}

// regenerateMsg requests a fresh account for the same email.
type regenerateMsg struct {
	email string
}

// flashMsg clears the flash after a timeout.
type flashMsg struct{}

func newGenerateModel(acc account.Account, countries []string, signupURL string) generateModel {
	m := generateModel{
		account:   acc,
		countries: countries,
		signupURL: signupURL,
	}
	m.fields = accountFields(acc)
	return m
}

func accountFields(acc account.Account) []accountField {
	return []accountField{
		{"email", acc.Email},
		{"first name", acc.FirstName},
		{"last name", acc.LastName},
		{"password", acc.Password},
		{"display name", acc.DisplayName},
		{"birth date", account.FormatBirthDate(acc.BirthDate)},
		{"country", acc.Country},
	}
}

func (m generateModel) Init() tea.Cmd {
	return nil
}

func (m generateModel) Update(msg tea.Msg) (generateModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case accountSavedMsg:
		return m.setFlash("saved"), clearFlashAfter()

	case browserMsg:
		if msg.err != nil {
			return m.setFlash("browser: " + msg.err.Error()), clearFlashAfter()
		}
		return m.setFlash("opened signup page"), clearFlashAfter()

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m generateModel) handleKey(msg tea.KeyMsg) (generateModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		// copy selected field — copy failures degrade to reading the
		// value off the screen
		val := m.fields[m.cursor].value
		if err := copyToClipboard(val); err != nil {
			return m.setFlash("copy: " + err.Error()), clearFlashAfter()
		}
		return m.setFlash("copied! paste it in the form"), clearFlashAfter()
	}

	switch msg.String() {
	case "s":
		return m, func() tea.Msg { return saveAccountMsg{account: m.account} }

	case "c":
		all := m.allFieldsText()
		if err := copyToClipboard(all); err != nil {
			return m.setFlash("copy: " + err.Error()), clearFlashAfter()
		}
		return m.setFlash("copied all!"), clearFlashAfter()

	case "o":
		return m, openBrowserCmd(m.signupURL)

	case "y":
		return m.cycleCountry(), nil

	case "n":
		email := m.account.Email
		return m, func() tea.Msg { return regenerateMsg{email: email} }
	}

	return m, nil
}

// cycleCountry advances the country field through the configured set.
func (m generateModel) cycleCountry() generateModel {
	if len(m.countries) <= 1 {
		return m
	}

	idx := 0
	for i, c := range m.countries {
		if c == m.account.Country {
			idx = i
			break
		}
	}

	m.account.Country = m.countries[(idx+1)%len(m.countries)]
	m.fields = accountFields(m.account)
	return m
}

func (m generateModel) setFlash(msg string) generateModel {
	m.flash = msg
	m.flashAt = time.Now()
	return m
}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}

func (m generateModel) allFieldsText() string {
	var b strings.Builder
	for _, f := range m.fields {
		fmt.Fprintf(&b, "%s: %s\n", f.label, f.value)
	}
	return b.String()
}

func (m generateModel) View() string {
	s := "\n"

	for i, f := range m.fields {
		label := zstyle.MutedText.Render(fmt.Sprintf("%-14s", f.label))
		if i == m.cursor {
			s += zstyle.ActiveBorder.Render(fmt.Sprintf("  > %s %s", label, f.value)) + "\n"
		} else {
			s += fmt.Sprintf("    %s %s\n", label, f.value)
		}
	}

	s += "\n"
	s += "  " + zstyle.MutedText.Render("work down the list: enter copies the selected field, then paste it in the form") + "\n"

	s += "\n"

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}
