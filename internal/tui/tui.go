// Package tui implements the root Bubble Tea model for zforge.
package tui

import (
	"fmt"
	"os"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstore"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zforge/internal/account"
	"github.com/zarlcorp/zforge/internal/config"
	"github.com/zarlcorp/zforge/internal/record"
)

type viewID int

const (
	viewPassword viewID = iota
	viewMenu
	viewEmail
	viewGenerate
	viewList
	viewDetail
)

// Model is the root TUI model.
type Model struct {
	version  string
	dataDir  string
	cfg      *config.Config
	gen      *account.Generator
	appender *record.Appender
	store    *zstore.Store
	accounts *zstore.Collection[account.Account]
	firstRun bool

	active   viewID
	password passwordModel
	menu     menuModel
	email    emailModel
	generate generateModel
	list     listModel
	detail   detailModel

	// terminal dimensions
	width  int
	height int
}

// New creates the root TUI model.
func New(version, dataDir string, cfg *config.Config, gen *account.Generator, firstRun bool) Model {
	return Model{
		version:  version,
		dataDir:  dataDir,
		cfg:      cfg,
		gen:      gen,
		appender: record.NewAppender(cfg.OutputFile),
		firstRun: firstRun,
		active:   viewPassword,
		password: newPasswordModel(firstRun),
		menu:     newMenuModel(version),
	}
}

func (m Model) Init() tea.Cmd {
	return m.password.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case passwordSubmitMsg:
		return m.openStore(msg.password)

	case navigateMsg:
		return m.navigate(msg.view)

	case emailSubmitMsg:
		return m.handleGenerate(msg.email)

	case regenerateMsg:
		return m.handleRegenerate(msg.email)

	case saveAccountMsg:
		return m.handleSave(msg.account)

	case deleteAccountMsg:
		return m.handleDelete(msg.id)

	case viewAccountMsg:
		m.detail = newDetailModel(msg.account)
		m.active = viewDetail
		return m, nil
	}

	return m.updateActive(msg)
}

func (m Model) View() string {
	// password and menu include the logo — render directly
	switch m.active {
	case viewPassword:
		return m.password.View()
	case viewMenu:
		return m.menu.View()
	}

	// all other views: header + separator + content + footer
	var content string
	switch m.active {
	case viewEmail:
		content = m.email.View()
	case viewGenerate:
		content = m.generate.View()
	case viewList:
		content = m.list.View()
	case viewDetail:
		content = m.detail.View()
	}

	header := zstyle.RenderHeader("zforge", viewTitle(m.active), zstyle.ZburnAccent)
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpFor(m.active))

	return "\n" + header + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

// viewTitle returns the display title for each view.
func viewTitle(id viewID) string {
	switch id {
	case viewEmail:
		return "Temp Email"
	case viewGenerate:
		return "Account Details"
	case viewList:
		return "Saved Accounts"
	case viewDetail:
		return "Account"
	}
	return ""
}

// helpFor returns keybinding pairs for each view's footer.
func helpFor(id viewID) []zstyle.HelpPair {
	switch id {
	case viewEmail:
		return []zstyle.HelpPair{
			{Key: "enter", Desc: "continue"},
			{Key: "ctrl+o", Desc: "reopen temp-mail"},
			{Key: "esc", Desc: "back"},
		}
	case viewGenerate:
		return []zstyle.HelpPair{
			{Key: "enter", Desc: "copy field"},
			{Key: "c", Desc: "copy all"},
			{Key: "o", Desc: "open signup"},
			{Key: "y", Desc: "country"},
			{Key: "s", Desc: "save"},
			{Key: "n", Desc: "new"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewList:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "enter", Desc: "view"},
			{Key: "d", Desc: "delete"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewDetail:
		return []zstyle.HelpPair{
			{Key: "enter", Desc: "copy field"},
			{Key: "c", Desc: "copy all"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	}
	return nil
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case viewPassword:
		m.password, cmd = m.password.Update(msg)
	case viewMenu:
		m.menu, cmd = m.menu.Update(msg)
	case viewEmail:
		m.email, cmd = m.email.Update(msg)
	case viewGenerate:
		m.generate, cmd = m.generate.Update(msg)
	case viewList:
		m.list, cmd = m.list.Update(msg)
	case viewDetail:
		m.detail, cmd = m.detail.Update(msg)
	}

	return m, cmd
}

func (m Model) openStore(password string) (tea.Model, tea.Cmd) {
	if err := os.MkdirAll(m.dataDir, 0o700); err != nil {
		m.password, _ = m.password.Update(passwordErrMsg{
			err: fmt.Errorf("create data dir: %w", err),
		})
		return m, nil
	}

	fsys := zfilesystem.NewOSFileSystem(m.dataDir)
	s, err := zstore.Open(fsys, []byte(password))
	if err != nil {
		m.password, _ = m.password.Update(passwordErrMsg{err: err})
		return m, nil
	}

	col, err := zstore.NewCollection[account.Account](s, "accounts")
	if err != nil {
		s.Close()
		m.password, _ = m.password.Update(passwordErrMsg{err: err})
		return m, nil
	}

	m.store = s
	m.accounts = col

	// the menu built in New predates the store; rebuild it so the saved
	// count shows on first unlock
	mm := newMenuModel(m.version)
	if accs, err := col.List(); err == nil {
		mm.accountCount = len(accs)
	}
	m.menu = mm

	m.active = viewMenu
	return m, nil
}

func (m Model) navigate(view viewID) (tea.Model, tea.Cmd) {
	switch view {
	case viewMenu:
		mm := newMenuModel(m.version)
		if m.accounts != nil {
			if accs, err := m.accounts.List(); err == nil {
				mm.accountCount = len(accs)
			}
		}
		m.menu = mm
		m.active = viewMenu
		return m, tea.ClearScreen

	case viewEmail:
		m.email = newEmailModel(m.cfg.TempMailURL)
		m.active = viewEmail
		return m, tea.Batch(m.email.Init(), tea.ClearScreen)

	case viewList:
		m, cmd := m.loadList()
		return m, tea.Batch(cmd, tea.ClearScreen)
	}

	return m, nil
}

// handleGenerate produces a fresh account for the given temp email and
// switches to the guided-fill view.
func (m Model) handleGenerate(email string) (tea.Model, tea.Cmd) {
	acc, err := m.gen.Generate(email)
	if err != nil {
		// retry-or-abort: stay on the email view with the error shown
		m.email.errMsg = err.Error() + " — press enter to retry"
		return m, nil
	}

	m.generate = newGenerateModel(acc, m.gen.Config().Countries, m.cfg.SignupURL)
	m.active = viewGenerate
	return m, tea.ClearScreen
}

// handleRegenerate replaces the displayed account, keeping the email.
func (m Model) handleRegenerate(email string) (tea.Model, tea.Cmd) {
	acc, err := m.gen.Generate(email)
	if err != nil {
		m.generate.flash = "generate: " + err.Error()
		return m, clearFlashAfter()
	}

	m.generate = newGenerateModel(acc, m.gen.Config().Countries, m.cfg.SignupURL)
	return m, nil
}

func (m Model) loadList() (tea.Model, tea.Cmd) {
	accs, err := m.accounts.List()
	if err != nil {
		// show empty list with error flash
		m.list = newListModel(nil)
		m.list.flash = "load: " + err.Error()
		m.active = viewList
		return m, clearFlashAfter()
	}

	// sort by CreatedAt descending — zstore.List does not guarantee order
	sort.Slice(accs, func(i, j int) bool {
		return accs[i].CreatedAt.After(accs[j].CreatedAt)
	})

	m.list = newListModel(accs)
	m.active = viewList
	return m, nil
}

func (m Model) handleSave(acc account.Account) (tea.Model, tea.Cmd) {
	if err := m.accounts.Put(acc.ID, acc); err != nil {
		m.generate.flash = "save: " + err.Error()
		return m, clearFlashAfter()
	}

	// file record is best effort — the store copy already succeeded
	if err := m.appender.Append(acc); err != nil {
		m.generate.flash = "saved (record file: " + err.Error() + ")"
		return m, clearFlashAfter()
	}

	m.generate, _ = m.generate.Update(accountSavedMsg{})
	return m, clearFlashAfter()
}

func (m Model) handleDelete(id string) (tea.Model, tea.Cmd) {
	if err := m.accounts.Delete(id); err != nil {
		if m.active == viewDetail {
			m.detail.flash = "delete: " + err.Error()
			return m, clearFlashAfter()
		}
		m.list.flash = "delete: " + err.Error()
		return m, clearFlashAfter()
	}

	// reload list after delete, from either view
	return m.loadList()
}

// Close cleans up resources. Call after the program exits.
func (m Model) Close() {
	if m.store != nil {
		m.store.Close()
	}
}
