package account

// Fixed sampling pools. Names are short common English names so the
// derived display name fits signup-form limits without mangling.

var firstNames = []string{
	"Oliver", "George", "Harry", "Jack", "Noah",
	"Olivia", "Amelia", "Isla", "Ava", "Mia",
	"Liam", "Emma", "Sophia", "Charlotte", "James",
	"Benjamin", "Lucas", "Henry", "Ethan", "Grace",
	"Daniel", "Thomas", "Samuel", "Freya", "Ella",
	"Leo", "Oscar", "Archie", "Alice", "Ruby",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones",
	"Miller", "Davis", "Garcia", "Rodriguez", "Wilson",
	"Taylor", "Thomas", "Moore", "Martin", "Jackson",
	"Walker", "Wright", "Turner", "Hughes", "Baker",
}

// countries a signup form will accept without extra verification steps.
var countries = []string{
	"United States",
	"United Kingdom",
	"Canada",
	"Australia",
	"Ireland",
	"New Zealand",
}

// password character classes
const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars   = "0123456789"
	specialChars = "!@#$%^&*()-_=+[]{}:;,./?"
	allPassChars = lowerChars + upperChars + digitChars + specialChars
)

// displayNameChars are the characters allowed after the leading letter.
const displayNameChars = lowerChars + digitChars + "_"
