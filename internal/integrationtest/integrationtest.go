// Package integrationtest provides server helpers used in integration tests.
package integrationtest

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-rounds/cmd/httpserver"
	"github.com/go-petr/pet-rounds/internal/domain"
	"github.com/go-petr/pet-rounds/internal/middleware"
	"github.com/go-petr/pet-rounds/internal/test"
	"github.com/go-petr/pet-rounds/pkg/configpkg"
)

// SetupServer returns a server talking to provider and aggregating users.
//
// The configuration is read from the repository configs directory, the
// provider settings and users are replaced.
func SetupServer(t *testing.T, provider *test.Provider, users ...domain.Credentials) *httpserver.Server {
	t.Helper()

	config, err := configpkg.Load("../../configs")
	if err != nil {
		t.Fatalf(`configpkg.Load("../../configs") returned error: %v`, err)
	}

	config.Provider = provider.Config()
	config.Users = make([]configpkg.User, 0, len(users))

	for _, u := range users {
		config.Users = append(config.Users, configpkg.User{Email: u.Email, Password: u.Password})
	}

	zerolog.SetGlobalLevel(zerolog.FatalLevel)

	logger := middleware.CreateLogger(config)

	gin.SetMode(gin.ReleaseMode)

	server, err := httpserver.New(logger, config)
	if err != nil {
		t.Fatalf(`httpserver.New(logger, config) returned error: %v`, err)
	}

	return server
}
