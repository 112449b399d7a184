package account

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"
	"unicode"
)

func TestGenerate(t *testing.T) {
	g := New(DefaultConfig())
	acc, err := g.Generate("someone@temp-mail.example")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	tests := []struct {
		name  string
		check func() bool
	}{
		{"ID length", func() bool { return len(acc.ID) == 8 }},
		{"ID is hex", func() bool { return regexp.MustCompile(`^[0-9a-f]{8}$`).MatchString(acc.ID) }},
		{"email kept", func() bool { return acc.Email == "someone@temp-mail.example" }},
		{"FirstName non-empty", func() bool { return acc.FirstName != "" }},
		{"LastName non-empty", func() bool { return acc.LastName != "" }},
		{"DisplayName non-empty", func() bool { return acc.DisplayName != "" }},
		{"Password length", func() bool { return len(acc.Password) == DefaultConfig().PasswordLength }},
		{"BirthDate non-zero", func() bool { return !acc.BirthDate.IsZero() }},
		{"Country non-empty", func() bool { return acc.Country != "" }},
		{"CreatedAt non-zero", func() bool { return !acc.CreatedAt.IsZero() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.check() {
				t.Errorf("check failed for account: %+v", acc)
			}
		})
	}
}

func TestGenerateTrimsEmail(t *testing.T) {
	g := New(DefaultConfig())
	acc, err := g.Generate("  padded@mail.example  ")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if acc.Email != "padded@mail.example" {
		t.Errorf("email not trimmed: %q", acc.Email)
	}
}

func TestDisplayNameConstraints(t *testing.T) {
	g := New(DefaultConfig())
	re := regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

	for range 200 {
		first, last := g.Name()
		dn, err := g.DisplayName(first, last)
		if err != nil {
			t.Fatalf("DisplayName(%q, %q): %v", first, last, err)
		}
		if len(dn) < 3 || len(dn) > 16 {
			t.Errorf("display name %q length %d out of [3,16]", dn, len(dn))
		}
		if !re.MatchString(dn) {
			t.Errorf("display name %q has invalid characters", dn)
		}
	}
}

func TestDisplayNameUsesNameFragments(t *testing.T) {
	g := New(DefaultConfig())
	dn, err := g.DisplayName("Grace", "Jones")
	if err != nil {
		t.Fatalf("DisplayName: %v", err)
	}
	if dn[0] != 'g' {
		t.Errorf("display name %q should start with the first name's initial", dn)
	}
}

func TestDisplayNameRetryBudget(t *testing.T) {
	g := New(DefaultConfig())

	// names outside the allowed alphabet can never validate
	_, err := g.DisplayName("-", "-")
	if !errors.Is(err, ErrGeneration) {
		t.Fatalf("expected ErrGeneration, got %v", err)
	}
}

func TestPasswordCharacterClasses(t *testing.T) {
	g := New(DefaultConfig())

	for range 50 {
		pw := g.Password()
		var hasLower, hasUpper, hasDigit, hasSpecial bool
		for _, r := range pw {
			switch {
			case unicode.IsLower(r):
				hasLower = true
			case unicode.IsUpper(r):
				hasUpper = true
			case unicode.IsDigit(r):
				hasDigit = true
			default:
				hasSpecial = true
			}
		}

		if !hasLower {
			t.Errorf("password %q missing lowercase", pw)
		}
		if !hasUpper {
			t.Errorf("password %q missing uppercase", pw)
		}
		if !hasDigit {
			t.Errorf("password %q missing digit", pw)
		}
		if !hasSpecial {
			t.Errorf("password %q missing special char", pw)
		}
	}
}

func TestPasswordMinimumLength(t *testing.T) {
	tests := []struct {
		name   string
		length int
		want   int
	}{
		{"default", 12, 12},
		{"below minimum clamps", 6, 10},
		{"exact minimum", 10, 10},
		{"long", 64, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.PasswordLength = tt.length
			g := New(cfg)
			if pw := g.Password(); len(pw) != tt.want {
				t.Errorf("Password() length = %d, want %d", len(pw), tt.want)
			}
		})
	}
}

func TestBirthDateRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.YearMin = 1980
	cfg.YearMax = 1990
	g := New(cfg)

	for range 200 {
		d := g.BirthDate()
		if d.Year() < 1980 || d.Year() > 1990 {
			t.Errorf("birth year %d out of [1980,1990]", d.Year())
		}
		// time.Date normalizes invalid dates; a day beyond the month's
		// length would have rolled the month over
		if d.Day() > daysIn(d.Year(), d.Month()) {
			t.Errorf("invalid date %s", d.Format("2006-01-02"))
		}
	}
}

func TestBirthDateSingleYear(t *testing.T) {
	cfg := DefaultConfig()
	cfg.YearMin = 1970
	cfg.YearMax = 1970
	g := NewSeeded(cfg, 7)

	for range 100 {
		if y := g.BirthDate().Year(); y != 1970 {
			t.Fatalf("expected year 1970, got %d", y)
		}
	}
}

func TestBirthDateFebruaryNeverInvalid(t *testing.T) {
	cfg := DefaultConfig()
	g := New(cfg)

	for range 1000 {
		d := g.BirthDate()
		if d.Month() == time.February && d.Day() > 29 {
			t.Fatalf("generated impossible February date %s", d.Format("2006-01-02"))
		}
	}
}

func TestGenerateUsesDefaultCountry(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultCountry = "Canada"
	g := New(cfg)

	for range 50 {
		acc, err := g.Generate("")
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if acc.Country != "Canada" {
			t.Fatalf("country = %q, want configured default Canada", acc.Country)
		}
	}
}

func TestGenerateDefaultCountryFallsBackToSet(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Countries = []string{"Ireland"}
	cfg.DefaultCountry = ""
	g := New(cfg)

	acc, err := g.Generate("")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if acc.Country != "Ireland" {
		t.Errorf("country = %q, want first of configured set", acc.Country)
	}
}

func TestCountryFromConfiguredSet(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Countries = []string{"Canada", "Ireland"}
	g := New(cfg)

	for range 50 {
		c := g.Country()
		if c != "Canada" && c != "Ireland" {
			t.Errorf("country %q not in configured set", c)
		}
	}
}

func TestSeededDeterminism(t *testing.T) {
	cfg := DefaultConfig()

	a := NewSeeded(cfg, 42)
	b := NewSeeded(cfg, 42)

	for i := range 10 {
		accA, errA := a.Generate("x@y.example")
		accB, errB := b.Generate("x@y.example")
		if errA != nil || errB != nil {
			t.Fatalf("Generate: %v / %v", errA, errB)
		}

		// CreatedAt is wall-clock; everything else must match
		accA.CreatedAt = time.Time{}
		accB.CreatedAt = time.Time{}
		if accA != accB {
			t.Fatalf("iteration %d: seeded generators diverged:\n%+v\n%+v", i, accA, accB)
		}
	}
}

func TestSeedsDiffer(t *testing.T) {
	cfg := DefaultConfig()
	a := NewSeeded(cfg, 1)
	b := NewSeeded(cfg, 2)

	accA, _ := a.Generate("")
	accB, _ := b.Generate("")
	if accA.Password == accB.Password && accA.DisplayName == accB.DisplayName {
		t.Error("different seeds produced identical output")
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@temp-mail.org", true},
		{"a@b.co", true},
		{"no-at-sign", false},
		{"two@@signs.com", false},
		{"spaces in@mail.com", false},
		{"missing@tld", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestFormatBirthDate(t *testing.T) {
	d := time.Date(1988, time.March, 7, 0, 0, 0, 0, time.UTC)
	if got := FormatBirthDate(d); got != "07/Mar/1988" {
		t.Errorf("FormatBirthDate = %q, want 07/Mar/1988", got)
	}
}

func TestNameFromFixedLists(t *testing.T) {
	g := New(DefaultConfig())

	inList := func(s string, list []string) bool {
		for _, v := range list {
			if v == s {
				return true
			}
		}
		return false
	}

	for range 20 {
		first, last := g.Name()
		if !inList(first, firstNames) {
			t.Errorf("first name %q not from fixed list", first)
		}
		if !inList(last, lastNames) {
			t.Errorf("last name %q not from fixed list", last)
		}
	}
}

func TestNormalizeConfig(t *testing.T) {
	var cfg Config
	n := cfg.normalize()

	if n.PasswordLength < 10 {
		t.Errorf("PasswordLength = %d, want >= 10", n.PasswordLength)
	}
	if n.YearMax < n.YearMin {
		t.Errorf("YearMax %d < YearMin %d", n.YearMax, n.YearMin)
	}
	if len(n.Countries) == 0 {
		t.Error("Countries empty after normalize")
	}
	if n.DefaultCountry == "" {
		t.Error("DefaultCountry empty after normalize")
	}
	if n.MaxAttempts <= 0 {
		t.Error("MaxAttempts not positive after normalize")
	}
}

func TestDisplayNameFirstCharIsLetter(t *testing.T) {
	g := NewSeeded(DefaultConfig(), 99)
	for range 100 {
		first, last := g.Name()
		dn, err := g.DisplayName(first, last)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.ContainsRune(lowerChars, rune(dn[0])) {
			t.Errorf("display name %q does not start with a letter", dn)
		}
	}
}
