// Package test provides shared test helpers.
package test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/go-petr/pet-rounds/internal/domain"
	"github.com/go-petr/pet-rounds/pkg/configpkg"
	"github.com/go-petr/pet-rounds/pkg/randompkg"
)

// Bodies returned by the fake provider on failures.
const (
	InvalidClientBody      = `{"type":"invalid_client","message":"Missing or invalid client credentials"}`
	InvalidCredentialsBody = `{"type":"invalid_credentials","message":"Invalid credentials"}`
	InvalidTokenBody       = `{"type":"invalid_token","message":"Invalid access token"}`
)

var errUnexpectedSigningMethod = errors.New("unexpected signing method")

type providerUser struct {
	hashedPassword []byte
	page           domain.ResourceSet
	delay          time.Duration

	// raw response overriding page when status is not zero
	rawStatus      int
	rawBody        string
	rawContentType string
}

// Provider is a fake transactions provider api.
//
// It requires its static headers and query parameters on every request,
// authenticates users against bcrypt hashes and issues jwt access tokens.
type Provider struct {
	Server      *httptest.Server
	Headers     []configpkg.Param
	QueryParams []configpkg.Param

	signingKey []byte

	mu      sync.Mutex
	users   map[string]*providerUser
	queries []url.Values
}

// NewProvider starts a fake provider closed at the end of the test.
func NewProvider(t *testing.T) *Provider {
	t.Helper()

	p := &Provider{
		Headers: []configpkg.Param{
			{Name: "Bankin-Version", Value: "2016-01-18"},
		},
		QueryParams: []configpkg.Param{
			{Name: "client_id", Value: randompkg.String(16)},
			{Name: "client_secret", Value: randompkg.String(32)},
		},
		signingKey: []byte(randompkg.String(32)),
		users:      make(map[string]*providerUser),
	}

	engine := gin.New()
	engine.Use(p.requireClient)
	engine.POST("/authenticate", p.authenticate)
	engine.GET("/transactions", p.transactions)

	p.Server = httptest.NewServer(engine)
	t.Cleanup(p.Server.Close)

	return p
}

// Config returns the provider settings pointing to the fake provider.
func (p *Provider) Config() configpkg.Provider {
	return configpkg.Provider{
		APIURL:                 p.Server.URL,
		Timeout:                5 * time.Second,
		SendCredentialsOnQuery: true,
		Headers:                p.Headers,
		QueryParams:            p.QueryParams,
	}
}

// URL returns the absolute url of path on the fake provider.
func (p *Provider) URL(path string) string {
	return p.Server.URL + path
}

// AddUser registers a user answering page to transactions queries.
func (p *Provider) AddUser(t *testing.T, creds domain.Credentials, page domain.ResourceSet) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt.GenerateFromPassword() returned error: %v", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.users[creds.Email] = &providerUser{
		hashedPassword: hashedPassword,
		page:           page,
	}
}

// SetDelay delays the transactions response of the user.
func (p *Provider) SetDelay(email string, d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if u, ok := p.users[email]; ok {
		u.delay = d
	}
}

// SetRawTransactions makes the transactions query of the user answer the given response.
func (p *Provider) SetRawTransactions(email string, status int, contentType, body string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if u, ok := p.users[email]; ok {
		u.rawStatus = status
		u.rawContentType = contentType
		u.rawBody = body
	}
}

// Queries returns the query parameters of every transactions request received.
func (p *Provider) Queries() []url.Values {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]url.Values(nil), p.queries...)
}

func (p *Provider) user(email string) (providerUser, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	u, ok := p.users[email]
	if !ok {
		return providerUser{}, false
	}

	return *u, true
}

func (p *Provider) requireClient(c *gin.Context) {
	for _, h := range p.Headers {
		if c.GetHeader(h.Name) != h.Value {
			abortJSON(c, http.StatusBadRequest, InvalidClientBody)
			return
		}
	}

	for _, param := range p.QueryParams {
		if c.Query(param.Name) != param.Value {
			abortJSON(c, http.StatusBadRequest, InvalidClientBody)
			return
		}
	}

	c.Next()
}

func (p *Provider) authenticate(c *gin.Context) {
	email := c.Query("email")

	u, ok := p.user(email)
	if !ok || bcrypt.CompareHashAndPassword(u.hashedPassword, []byte(c.Query("password"))) != nil {
		abortJSON(c, http.StatusUnauthorized, InvalidCredentialsBody)
		return
	}

	expiresAt := time.Now().Add(time.Hour)
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.signingKey)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_at":   expiresAt.UTC().Format(time.RFC3339),
		"user": gin.H{
			"email":        email,
			"resource_uri": "/v2/users/" + randompkg.String(8),
		},
	})
}

func (p *Provider) transactions(c *gin.Context) {
	p.mu.Lock()
	p.queries = append(p.queries, c.Request.URL.Query())
	p.mu.Unlock()

	subject, err := p.verifyBearer(c.GetHeader("Authorization"))
	if err != nil || subject != c.Query("email") {
		abortJSON(c, http.StatusUnauthorized, InvalidTokenBody)
		return
	}

	u, ok := p.user(subject)
	if !ok {
		abortJSON(c, http.StatusUnauthorized, InvalidTokenBody)
		return
	}

	if u.delay > 0 {
		time.Sleep(u.delay)
	}

	if u.rawStatus != 0 {
		c.Data(u.rawStatus, u.rawContentType, []byte(u.rawBody))
		return
	}

	c.JSON(http.StatusOK, u.page)
}

func (p *Provider) verifyBearer(header string) (string, error) {
	tokenString := strings.TrimPrefix(header, "Bearer ")

	var claims jwt.RegisteredClaims

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errUnexpectedSigningMethod
		}

		return p.signingKey, nil
	})
	if err != nil {
		return "", err
	}

	return claims.Subject, nil
}

func abortJSON(c *gin.Context, status int, body string) {
	c.Data(status, "application/json; charset=utf-8", []byte(body))
	c.Abort()
}

// MustJSON encodes v or fails the test.
func MustJSON(t *testing.T, v any) string {
	t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json.Marshal(%v) returned error: %v", v, err)
	}

	return string(data)
}
