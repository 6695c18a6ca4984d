// Package httpserver manages server creation and api routing.
package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-rounds/internal/domain"
	"github.com/go-petr/pet-rounds/internal/middleware"
	"github.com/go-petr/pet-rounds/internal/rounddelivery"
	"github.com/go-petr/pet-rounds/internal/roundservice"
	"github.com/go-petr/pet-rounds/internal/transactionrepo"
	"github.com/go-petr/pet-rounds/pkg/configpkg"
	"github.com/go-petr/pet-rounds/pkg/messagepkg"
)

// Server holds handlers router and configuration.
type Server struct {
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	users, err := configuredUsers(config.Users)
	if err != nil {
		return nil, err
	}

	trans, err := messagepkg.New(config.Locale)
	if err != nil {
		return nil, fmt.Errorf("cannot load messages: %w", err)
	}

	client := &http.Client{Timeout: config.Provider.Timeout}

	transactionRepo := transactionrepo.NewRepoHTTP(client, config.Provider)
	roundService := roundservice.New(transactionRepo, users)
	roundHandler := rounddelivery.NewHandler(roundService, trans, config.Environment == "development")

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.GET("/round", roundHandler.Round)
	engine.GET("/rounds", roundHandler.Rounds)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := messagepkg.RegisterValidatorTranslations(v, trans); err != nil {
			return nil, fmt.Errorf("cannot register validator translations: %w", err)
		}
	}

	server := &Server{
		Engine: engine,
		Config: config,
	}

	return server, nil
}

func configuredUsers(users []configpkg.User) ([]domain.Credentials, error) {
	creds := make([]domain.Credentials, 0, len(users))

	for i, u := range users {
		c := domain.Credentials{Email: u.Email, Password: u.Password}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configured user %d: %w", i, err)
		}

		creds = append(creds, c)
	}

	return creds, nil
}
