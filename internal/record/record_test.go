package record

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/zarlcorp/zforge/internal/account"
)

func testAccount() account.Account {
	return account.Account{
		ID:          "abc12345",
		Email:       "jane@temp-mail.example",
		FirstName:   "Jane",
		LastName:    "Doe",
		DisplayName: "janedoe42",
		Password:    "aB3!xxxxxxxx",
		BirthDate:   time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC),
		Country:     "United Kingdom",
		CreatedAt:   time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestTextBlock(t *testing.T) {
	block := TextBlock(testAccount())

	wantLines := []string{
		"Email: jane@temp-mail.example",
		"First name: Jane",
		"Last name: Doe",
		"Create password: aB3!xxxxxxxx",
		"Add a display name: janedoe42",
		"Date: 15/Jun/1990",
		"Country: United Kingdom",
		"Created: 2025-01-01T12:00:00Z",
	}

	for _, want := range wantLines {
		if !strings.Contains(block, want) {
			t.Errorf("block missing line %q:\n%s", want, block)
		}
	}

	if !strings.HasSuffix(block, "-------------------------------") {
		t.Error("block should end with separator line")
	}
}

func TestAppendCreatesFile(t *testing.T) {
	path := t.TempDir() + "/out/accounts.txt"
	a := NewAppender(path)

	if err := a.Append(testAccount()); err != nil {
		t.Fatalf("Append: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), "jane@temp-mail.example") {
		t.Error("appended file missing account data")
	}
}

func TestAppendAccumulates(t *testing.T) {
	path := t.TempDir() + "/accounts.txt"
	a := NewAppender(path)

	if err := a.Append(testAccount()); err != nil {
		t.Fatal(err)
	}
	if err := a.Append(testAccount()); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(data), "Email: "); got != 2 {
		t.Errorf("expected 2 records, found %d", got)
	}
}

func TestAppendErrorLeavesExistingRecords(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/accounts.txt"
	a := NewAppender(path)

	if err := a.Append(testAccount()); err != nil {
		t.Fatal(err)
	}
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	// make the file unopenable for writing
	if err := os.Chmod(path, 0o400); err != nil {
		t.Fatal(err)
	}
	defer os.Chmod(path, 0o600)

	if err := a.Append(testAccount()); err == nil {
		t.Skip("running as root; permission errors not enforced")
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("failed append modified existing records")
	}
}
