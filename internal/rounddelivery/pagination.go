package rounddelivery

import (
	"errors"
	"net/url"

	"github.com/go-petr/pet-rounds/internal/domain"
)

// RewritePagination returns p with the path of its links replaced by path.
// Scheme, host, port and query of the links are kept.
//
// When a link is malformed the error is returned and p must be used as is.
func RewritePagination(p domain.Pagination, path string) (domain.Pagination, error) {
	previous, err := rewritePath(p.PreviousURI, path)
	if err != nil {
		return p, err
	}

	next, err := rewritePath(p.NextURI, path)
	if err != nil {
		return p, err
	}

	return domain.Pagination{PreviousURI: previous, NextURI: next}, nil
}

func rewritePath(uri, path string) (string, error) {
	if uri == "" {
		return "", nil
	}

	u, err := url.Parse(uri)
	if err != nil {
		return "", err
	}

	u.Path = path
	u.RawPath = ""

	return u.String(), nil
}

// causeOf drops the url from url parsing errors, provider links may carry credentials.
func causeOf(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Op + ": " + urlErr.Err.Error()
	}

	return err.Error()
}
