// Package record renders generated accounts as human-readable text
// blocks and appends them to a local file.
package record

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/zarlcorp/zforge/internal/account"
)

const separator = "-------------------------------"

// TextBlock renders one account as a field-per-line block matching the
// labels on the signup form.
func TextBlock(acc account.Account) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Email: %s\n", acc.Email)
	fmt.Fprintf(&b, "First name: %s\n", acc.FirstName)
	fmt.Fprintf(&b, "Last name: %s\n", acc.LastName)
	fmt.Fprintf(&b, "Create password: %s\n", acc.Password)
	fmt.Fprintf(&b, "Add a display name: %s\n", acc.DisplayName)
	fmt.Fprintf(&b, "Date: %s\n", account.FormatBirthDate(acc.BirthDate))
	fmt.Fprintf(&b, "Country: %s\n", acc.Country)
	fmt.Fprintf(&b, "Created: %s\n", acc.CreatedAt.Format(time.RFC3339))
	b.WriteString(separator)
	return b.String()
}

// Appender appends account blocks to a single file.
type Appender struct {
	path string
}

// NewAppender creates an appender for the given path. The file and its
// parent directories are created on first append.
func NewAppender(path string) *Appender {
	return &Appender{path: path}
}

// Path returns the output file path.
func (a *Appender) Path() string {
	return a.path
}

// Append writes one account block to the file. Appends are O_APPEND
// writes, so a failed append never corrupts earlier records.
func (a *Appender) Append(acc account.Account) error {
	if dir := filepath.Dir(a.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("append record: create dir: %w", err)
		}
	}

	f, err := os.OpenFile(a.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("append record: open %s: %w", a.path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(TextBlock(acc) + "\n"); err != nil {
		return fmt.Errorf("append record: write: %w", err)
	}

	return nil
}
