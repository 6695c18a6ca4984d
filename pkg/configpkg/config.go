// Package configpkg provides parsing functionality for the configuration file and environment variables.
package configpkg

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingAPIURL indicates that the provider base url is not configured.
var ErrMissingAPIURL = errors.New("provider.api_url is not set")

// Param is a name/value pair sent with every provider request,
// either as a header or as a query parameter.
type Param struct {
	Name  string `mapstructure:"name"`
	Value string `mapstructure:"value"`
}

// User holds the provider credentials of one user of the aggregated endpoint.
type User struct {
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}

// Provider holds the provider api settings.
type Provider struct {
	APIURL  string        `mapstructure:"api_url"`
	Timeout time.Duration `mapstructure:"timeout"`
	// SendCredentialsOnQuery adds email and password to the transactions query
	// in addition to the bearer token.
	SendCredentialsOnQuery bool    `mapstructure:"send_credentials_on_query"`
	Headers                []Param `mapstructure:"headers"`
	QueryParams            []Param `mapstructure:"query_params"`
}

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress string   `mapstructure:"server_address"`
	Environment   string   `mapstructure:"go_env"`
	LogLevel      string   `mapstructure:"log_level"`
	Locale        string   `mapstructure:"locale"`
	Provider      Provider `mapstructure:"provider"`
	Users         []User   `mapstructure:"users"`
}

// Load reads configuration from file or environment variables.
//
// Scalar keys can be overridden from the environment, nested keys use an
// underscore separator: provider.api_url is read from PROVIDER_API_URL.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("yaml")

	v.SetDefault("server_address", "0.0.0.0:8080")
	v.SetDefault("go_env", "production")
	v.SetDefault("log_level", "info")
	v.SetDefault("locale", "en")
	v.SetDefault("provider.timeout", 30*time.Second)
	v.SetDefault("provider.send_credentials_on_query", true)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = v.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	if c.Provider.APIURL == "" {
		return c, ErrMissingAPIURL
	}

	return c, nil
}
