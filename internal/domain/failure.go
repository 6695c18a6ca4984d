package domain

import (
	"fmt"
	"net/http"
)

// JSONParsingError is the body of the failure returned when a provider
// response could not be decoded.
const JSONParsingError = "JSON Parsing error"

// UpstreamFailure carries a failed provider response verbatim so it can be
// relayed to the caller.
type UpstreamFailure struct {
	Status      int
	Body        string
	ContentType string
}

// NewParsingFailure returns the failure used when the provider answered 200
// with a body that could not be decoded.
func NewParsingFailure() *UpstreamFailure {
	return &UpstreamFailure{
		Status:      http.StatusInternalServerError,
		Body:        JSONParsingError,
		ContentType: "text/plain; charset=utf-8",
	}
}

func (f *UpstreamFailure) Error() string {
	return fmt.Sprintf("provider api - status %d", f.Status)
}
