// Package cli implements zforge's command-line subcommands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"syscall"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstore"
	"github.com/zarlcorp/zforge/internal/account"
	"github.com/zarlcorp/zforge/internal/config"
	"github.com/zarlcorp/zforge/internal/record"
	"golang.org/x/term"
)

// DataDir returns the default data directory for zforge.
func DataDir() string {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return d + "/zforge"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".zforge"
	}
	return home + "/.local/share/zforge"
}

// ReadPassword prompts for a password on stderr and reads it without echo.
func ReadPassword(prompt string, w io.Writer) (string, error) {
	fmt.Fprint(w, prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}

// ReadNewPassword prompts for a new password with confirmation.
func ReadNewPassword(w io.Writer) (string, error) {
	pass, err := ReadPassword("master password: ", w)
	if err != nil {
		return "", err
	}
	confirm, err := ReadPassword("confirm password: ", w)
	if err != nil {
		return "", err
	}
	if pass != confirm {
		return "", fmt.Errorf("passwords do not match")
	}
	return pass, nil
}

// IsFirstRun checks whether the store has been initialized.
func IsFirstRun(dir string) bool {
	_, err := os.Stat(dir + "/salt")
	return err != nil
}

// OpenStore prompts for a password and opens the store, returning both
// the store and an accounts collection.
func OpenStore(dir string) (*zstore.Store, *zstore.Collection[account.Account], error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, nil, fmt.Errorf("create data dir: %w", err)
	}

	var pass string
	var err error
	if IsFirstRun(dir) {
		pass, err = ReadNewPassword(os.Stderr)
	} else {
		pass, err = ReadPassword("master password: ", os.Stderr)
	}
	if err != nil {
		return nil, nil, err
	}

	fsys := zfilesystem.NewOSFileSystem(dir)
	s, err := zstore.Open(fsys, []byte(pass))
	if err != nil {
		return nil, nil, err
	}

	col, err := zstore.NewCollection[account.Account](s, "accounts")
	if err != nil {
		s.Close()
		return nil, nil, err
	}

	return s, col, nil
}

// CmdAccount generates and prints one complete account.
func CmdAccount(cfg *config.Config, args []string) {
	asJSON := hasFlag(args, "--json")
	save := hasFlag(args, "--save")
	email := flagValue(args, "--email")

	if email != "" && !account.IsValidEmail(email) {
		fmt.Fprintf(os.Stderr, "zforge: invalid email %q\n", email)
		os.Exit(1)
	}

	var g *account.Generator
	if seed := flagValue(args, "--seed"); seed != "" {
		n, err := strconv.ParseUint(seed, 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "zforge: bad seed %q\n", seed)
			os.Exit(1)
		}
		g = account.NewSeeded(cfg.GeneratorConfig(), n)
	} else {
		g = account.New(cfg.GeneratorConfig())
	}

	acc, err := g.Generate(email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zforge: %v\n", err)
		os.Exit(1)
	}

	if asJSON {
		printJSON(acc)
	} else {
		printAccount(acc)
	}

	if save {
		saveAccount(cfg, acc)
	}
}

func saveAccount(cfg *config.Config, acc account.Account) {
	s, col, err := OpenStore(DataDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "zforge: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	if err := col.Put(acc.ID, acc); err != nil {
		fmt.Fprintf(os.Stderr, "zforge: save: %v\n", err)
		os.Exit(1)
	}

	// record file failures are reported but not fatal — the account is
	// already in the store
	if err := record.NewAppender(cfg.OutputFile).Append(acc); err != nil {
		fmt.Fprintf(os.Stderr, "zforge: %v\n", err)
	}

	fmt.Fprintln(os.Stderr, "saved")
}

// CmdList lists all saved accounts.
func CmdList(args []string) {
	asJSON := hasFlag(args, "--json")

	s, col, err := OpenStore(DataDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "zforge: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	accs, err := col.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "zforge: list: %v\n", err)
		os.Exit(1)
	}

	sort.Slice(accs, func(i, j int) bool {
		return accs[i].CreatedAt.After(accs[j].CreatedAt)
	})

	if len(accs) == 0 {
		fmt.Println("no saved accounts")
		return
	}

	if asJSON {
		printJSON(accs)
		return
	}

	for _, acc := range accs {
		fmt.Printf("  %-10s %-20s %-30s %s\n",
			acc.ID,
			acc.FirstName+" "+acc.LastName,
			acc.Email,
			acc.CreatedAt.Format("2006-01-02"),
		)
	}
}

// CmdForget deletes a saved account by ID.
func CmdForget(id string) {
	s, col, err := OpenStore(DataDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "zforge: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	if err := col.Delete(id); err != nil {
		fmt.Fprintf(os.Stderr, "zforge: forget: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("deleted %s\n", id)
}

func printAccount(acc account.Account) {
	fmt.Printf("  id:           %s\n", acc.ID)
	fmt.Printf("  email:        %s\n", acc.Email)
	fmt.Printf("  name:         %s %s\n", acc.FirstName, acc.LastName)
	fmt.Printf("  display name: %s\n", acc.DisplayName)
	fmt.Printf("  password:     %s\n", acc.Password)
	fmt.Printf("  birth date:   %s\n", account.FormatBirthDate(acc.BirthDate))
	fmt.Printf("  country:      %s\n", acc.Country)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "zforge: encode json: %v\n", err)
		os.Exit(1)
	}
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if strings.EqualFold(a, flag) {
			return true
		}
	}
	return false
}

// flagValue returns the value following flag, or the value in a
// --flag=value form. Empty string means the flag is absent.
func flagValue(args []string, flag string) string {
	for i, a := range args {
		if strings.EqualFold(a, flag) && i+1 < len(args) {
			return args[i+1]
		}
		if strings.HasPrefix(strings.ToLower(a), strings.ToLower(flag)+"=") {
			return a[len(flag)+1:]
		}
	}
	return ""
}
