package account

const (
	minPasswordLen  = 10
	defaultAttempts = 32
	defaultPassLen  = 12
	defaultYearMin  = 1970
	defaultYearMax  = 2004
	defaultCountry  = "United States"
)

// Config holds the tunable generation parameters. The zero value is not
// usable — start from DefaultConfig and override fields.
type Config struct {
	PasswordLength int
	YearMin        int
	YearMax        int
	Countries      []string
	DefaultCountry string
	// MaxAttempts bounds display-name reject-and-retry.
	MaxAttempts int
}

// DefaultConfig returns the stock generation parameters: 12-char
// passwords, adult birth years 1970-2004, English-speaking countries.
func DefaultConfig() Config {
	return Config{
		PasswordLength: defaultPassLen,
		YearMin:        defaultYearMin,
		YearMax:        defaultYearMax,
		Countries:      countries,
		DefaultCountry: defaultCountry,
		MaxAttempts:    defaultAttempts,
	}
}

// normalize clamps out-of-range values so a partially filled Config
// cannot produce invalid output.
func (c Config) normalize() Config {
	if c.PasswordLength < minPasswordLen {
		c.PasswordLength = minPasswordLen
	}
	if c.YearMin == 0 {
		c.YearMin = defaultYearMin
	}
	if c.YearMax == 0 {
		c.YearMax = defaultYearMax
	}
	if c.YearMax < c.YearMin {
		c.YearMax = c.YearMin
	}
	if len(c.Countries) == 0 {
		c.Countries = countries
	}
	if c.DefaultCountry == "" {
		c.DefaultCountry = c.Countries[0]
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = defaultAttempts
	}
	return c
}
