package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

func init() {
	// The provider and our clients exchange amounts as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

var (
	// ErrInvalidSinceDate indicates that the since date does not match the date layout.
	ErrInvalidSinceDate = errors.New("wrong since date format")
	// ErrInvalidUntilDate indicates that the until date does not match the date layout.
	ErrInvalidUntilDate = errors.New("wrong until date format")
)

// DateLayout is the layout of since and until filters.
// Month and day accept both padded and unpadded values.
const DateLayout = "2006-1-2"

// Transaction holds an operation on a user account.
//
// Two transactions are the same transaction when their IDs are equal.
type Transaction struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"` // negative for debits
	Date        string          `json:"date"`
	ResourceURI string          `json:"resource_uri"`
}

// Pagination holds the links to the neighbour pages of a resource set.
type Pagination struct {
	PreviousURI string `json:"previous_uri,omitempty"`
	NextURI     string `json:"next_uri,omitempty"`
}

// ResourceSet is the transactions page returned by the provider.
//
// Resources keep fetch order then provider order.
type ResourceSet struct {
	Resources  []Transaction `json:"resources"`
	Pagination *Pagination   `json:"pagination,omitempty"`
}

// TransactionFilters holds the optional provider query filters.
//
// Empty values are not sent to the provider.
type TransactionFilters struct {
	After  string // cursor, start of the page
	Before string // cursor, end of the page
	Limit  string // page size, 1-500
	Since  string
	Until  string
}
