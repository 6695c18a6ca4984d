// Package transactionrepo manages access to the provider transactions api.
package transactionrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-rounds/internal/domain"
	"github.com/go-petr/pet-rounds/pkg/configpkg"
	"github.com/go-petr/pet-rounds/pkg/errorspkg"
)

// Provider api paths.
const (
	AuthenticatePath = "/authenticate"
	TransactionsPath = "/transactions"
)

const (
	defaultContentType = "text/plain; charset=utf-8"
	redacted           = "[REDACTED]"
)

// RepoHTTP facilitates the provider api calls.
//
// Every request carries the configured static headers and query parameters.
type RepoHTTP struct {
	client          *http.Client
	apiURL          string
	headers         []configpkg.Param
	queryParams     []configpkg.Param
	sendCredentials bool
}

// NewRepoHTTP returns the provider repo using client for every call.
func NewRepoHTTP(client *http.Client, provider configpkg.Provider) *RepoHTTP {
	return &RepoHTTP{
		client:          client,
		apiURL:          strings.TrimRight(provider.APIURL, "/"),
		headers:         provider.Headers,
		queryParams:     provider.QueryParams,
		sendCredentials: provider.SendCredentialsOnQuery,
	}
}

// Authenticate exchanges the user credentials for a provider access token.
func (r *RepoHTTP) Authenticate(ctx context.Context, creds domain.Credentials) (string, error) {
	l := zerolog.Ctx(ctx)

	query := url.Values{}
	query.Set("email", creds.Email)
	query.Set("password", creds.Password)

	req, err := r.newRequest(ctx, http.MethodPost, AuthenticatePath, query)
	if err != nil {
		return "", err
	}

	resp, body, err := r.do(ctx, req)
	if err != nil {
		return "", fmt.Errorf("provider authenticate: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		l.Info().
			Int("status", resp.StatusCode).
			Str("email", MaskEmail(creds.Email)).
			Msg("provider authentication failed")

		return "", newUpstreamFailure(resp, body)
	}

	token, ok := findAccessToken(body)
	if !ok {
		l.Error().Msg("cannot find access token in provider authentication response")
		return "", domain.NewParsingFailure()
	}

	return token, nil
}

// Transactions returns the transactions page of the user matching filters.
//
// Empty filters are not sent.
func (r *RepoHTTP) Transactions(ctx context.Context, token string, creds domain.Credentials, filters domain.TransactionFilters) (domain.ResourceSet, error) {
	l := zerolog.Ctx(ctx)

	query := url.Values{}
	if r.sendCredentials {
		query.Set("email", creds.Email)
		query.Set("password", creds.Password)
	}

	setIfNotEmpty(query, "after", filters.After)
	setIfNotEmpty(query, "before", filters.Before)
	setIfNotEmpty(query, "limit", filters.Limit)
	setIfNotEmpty(query, "since", filters.Since)
	setIfNotEmpty(query, "until", filters.Until)

	req, err := r.newRequest(ctx, http.MethodGet, TransactionsPath, query)
	if err != nil {
		return domain.ResourceSet{}, err
	}

	req.Header.Set("Authorization", "Bearer "+token)

	resp, body, err := r.do(ctx, req)
	if err != nil {
		return domain.ResourceSet{}, fmt.Errorf("provider transactions: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		l.Info().Int("status", resp.StatusCode).Msg("provider transactions request failed")
		return domain.ResourceSet{}, newUpstreamFailure(resp, body)
	}

	var rs domain.ResourceSet
	if err := json.Unmarshal(body, &rs); err != nil {
		l.Error().Err(err).Msg("cannot parse provider transactions response")
		return domain.ResourceSet{}, domain.NewParsingFailure()
	}

	return rs, nil
}

func (r *RepoHTTP) newRequest(ctx context.Context, method, path string, query url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, r.apiURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating provider request: %w", err)
	}

	q := req.URL.Query()
	for _, p := range r.queryParams {
		q.Set(p.Name, p.Value)
	}

	for name, values := range query {
		q[name] = values
	}

	req.URL.RawQuery = q.Encode()

	for _, h := range r.headers {
		req.Header.Set(h.Name, h.Value)
	}

	return req, nil
}

func (r *RepoHTTP) do(ctx context.Context, req *http.Request) (*http.Response, []byte, error) {
	zerolog.Ctx(ctx).Debug().
		Str("method", req.Method).
		Str("url", RedactURL(req.URL)).
		Msg("provider request")

	resp, err := r.client.Do(req)
	if err != nil {
		// url.Error embeds the request url and its credentials
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}

		return nil, nil, fmt.Errorf("%w: %v", errorspkg.ErrProviderUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("reading provider response: %w", err)
	}

	return resp, body, nil
}

func newUpstreamFailure(resp *http.Response, body []byte) *domain.UpstreamFailure {
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = defaultContentType
	}

	return &domain.UpstreamFailure{
		Status:      resp.StatusCode,
		Body:        string(body),
		ContentType: contentType,
	}
}

func setIfNotEmpty(query url.Values, key, value string) {
	if value != "" {
		query.Set(key, value)
	}
}

// findAccessToken returns the first access_token string field of the JSON
// document, looking at the top level first and then into nested objects.
func findAccessToken(body []byte) (string, bool) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return "", false
	}

	return findString(doc, "access_token")
}

func findString(node any, key string) (string, bool) {
	switch n := node.(type) {
	case map[string]any:
		if s, ok := n[key].(string); ok && s != "" {
			return s, true
		}

		for _, child := range n {
			if s, ok := findString(child, key); ok {
				return s, true
			}
		}
	case []any:
		for _, child := range n {
			if s, ok := findString(child, key); ok {
				return s, true
			}
		}
	}

	return "", false
}

// RedactURL returns u as a string with the credentials of its query hidden.
func RedactURL(u *url.URL) string {
	c := *u
	q := c.Query()

	if q.Has("password") {
		q.Set("password", redacted)
	}

	if q.Has("client_secret") {
		q.Set("client_secret", redacted)
	}

	if email := q.Get("email"); email != "" {
		q.Set("email", MaskEmail(email))
	}

	c.RawQuery = q.Encode()

	return c.String()
}

// MaskEmail keeps the first character of the local part and the domain.
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return redacted
	}

	return email[:1] + "***" + email[at:]
}
