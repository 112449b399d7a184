// Package account generates fake registration details for web signup forms.
// Generation is driven by an injectable random source so that seeded
// generators are fully reproducible.
package account

import (
	"regexp"
	"time"
)

// Account holds one complete set of generated registration details.
type Account struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DisplayName string    `json:"display_name"`
	Password    string    `json:"password"`
	BirthDate   time.Time `json:"birth_date"`
	Country     string    `json:"country"`
	CreatedAt   time.Time `json:"created_at"`
}

// FormatBirthDate renders a birth date the way signup forms expect it,
// e.g. "07/Mar/1988".
func FormatBirthDate(t time.Time) string {
	return t.Format("02/Jan/2006")
}

var emailRE = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// IsValidEmail reports whether s looks like a usable email address.
// Intentionally loose — the address comes from a temp-mail provider and
// only needs to survive a signup form.
func IsValidEmail(s string) bool {
	return emailRE.MatchString(s)
}
