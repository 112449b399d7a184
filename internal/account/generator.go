package account

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	mathrand "math/rand/v2"
	"regexp"
	"strings"
	"time"
)

// ErrGeneration is returned when a constrained field cannot be produced
// within the retry budget.
var ErrGeneration = errors.New("retry budget exhausted")

var displayNameRE = regexp.MustCompile(`^[a-z][a-z0-9_]{2,15}$`)

// Generator produces random registration data.
type Generator struct {
	cfg Config

	// intn returns a random int in [0, n). Defaults to crypto/rand;
	// seeded generators swap in a deterministic source.
	intn func(n int) int
}

// New creates a generator backed by crypto/rand.
func New(cfg Config) *Generator {
	return &Generator{cfg: cfg.normalize(), intn: cryptoIntn}
}

// NewSeeded creates a deterministic generator. Two generators with the
// same seed and config produce identical accounts.
func NewSeeded(cfg Config, seed uint64) *Generator {
	r := mathrand.New(mathrand.NewPCG(seed, 0))
	return &Generator{
		cfg:  cfg.normalize(),
		intn: func(n int) int { return int(r.Uint64N(uint64(n))) },
	}
}

// Config returns the generator's normalized configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// Generate produces one complete account around the given email address.
// The email is caller-supplied (a temp-mail address) and may be empty.
// Country starts as the configured default — signup forms preselect one —
// and callers offer the rest of the set as alternatives.
func (g *Generator) Generate(email string) (Account, error) {
	first, last := g.Name()

	display, err := g.DisplayName(first, last)
	if err != nil {
		return Account{}, fmt.Errorf("generate account: %w", err)
	}

	return Account{
		ID:          g.hexID(),
		Email:       strings.TrimSpace(email),
		FirstName:   first,
		LastName:    last,
		DisplayName: display,
		Password:    g.Password(),
		BirthDate:   g.BirthDate(),
		Country:     g.cfg.DefaultCountry,
		CreatedAt:   time.Now(),
	}, nil
}

// Name samples a first/last name pair uniformly from the fixed lists.
func (g *Generator) Name() (first, last string) {
	return g.pick(firstNames), g.pick(lastNames)
}

// DisplayName derives a signup-friendly handle from a name pair:
// 3-16 characters, leading letter, then [a-z0-9_] only. Candidates are
// built from random-length name fragments plus a random suffix and
// rejected until they validate.
func (g *Generator) DisplayName(first, last string) (string, error) {
	for range g.cfg.MaxAttempts {
		candidate := g.displayNameCandidate(first, last)
		if displayNameRE.MatchString(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("display name: %w", ErrGeneration)
}

func (g *Generator) displayNameCandidate(first, last string) string {
	first = strings.ToLower(first)
	last = strings.ToLower(last)

	// random-length fragments keep candidates varied; the leading
	// fragment always starts with a letter
	frag1 := first[:1+g.intn(len(first))]
	frag2 := last[:1+g.intn(len(last))]

	suffix := make([]byte, g.intn(5))
	for i := range suffix {
		suffix[i] = g.pickByte(displayNameChars)
	}

	return frag1 + frag2 + string(suffix)
}

// Password generates a password of the configured length containing at
// least one character from each class (lower, upper, digit, special).
func (g *Generator) Password() string {
	length := g.cfg.PasswordLength

	buf := make([]byte, length)

	// guarantee one from each class
	buf[0] = g.pickByte(lowerChars)
	buf[1] = g.pickByte(upperChars)
	buf[2] = g.pickByte(digitChars)
	buf[3] = g.pickByte(specialChars)

	for i := 4; i < length; i++ {
		buf[i] = g.pickByte(allPassChars)
	}

	// shuffle using Fisher-Yates so class positions are not predictable
	for i := length - 1; i > 0; i-- {
		j := g.intn(i + 1)
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}

// BirthDate samples a calendar-valid date with the year uniform in the
// configured range. The day is drawn within the month's actual length,
// so February never yields the 30th.
func (g *Generator) BirthDate() time.Time {
	year := g.cfg.YearMin + g.intn(g.cfg.YearMax-g.cfg.YearMin+1)
	month := time.Month(1 + g.intn(12))
	day := 1 + g.intn(daysIn(year, month))
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Country samples uniformly from the configured country set. Generate
// does not call this — it preselects the configured default — but
// callers wanting a random pick can.
func (g *Generator) Country() string {
	return g.pick(g.cfg.Countries)
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	// day 0 of the next month normalizes to the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// hexID generates an 8-character hex string.
func (g *Generator) hexID() string {
	b := make([]byte, 4)
	for i := range b {
		b[i] = byte(g.intn(256))
	}
	return hex.EncodeToString(b)
}

// pick returns a random element from a string slice.
func (g *Generator) pick(s []string) string {
	return s[g.intn(len(s))]
}

// pickByte returns a random byte from a string.
func (g *Generator) pickByte(s string) byte {
	return s[g.intn(len(s))]
}

// cryptoIntn returns a cryptographically random int in [0, n).
func cryptoIntn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failure is unrecoverable
		panic("crypto/rand: " + err.Error())
	}
	return int(v.Int64())
}
