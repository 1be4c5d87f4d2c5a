package constants

const (
	MaxNameLen        = 100
	MaxDescriptionLen = 200
)

// Largest amount accepted from user input.
const MaxAmount = "1000000000"

// DefaultTransactionTypes seeds the type catalog on first run.
var DefaultTransactionTypes = []string{
	"Housing",
	"Utilities",
	"Groceries",
	"Transportation",
	"Entertainment",
	"Income",
}
