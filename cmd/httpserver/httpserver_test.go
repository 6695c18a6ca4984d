package httpserver

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-rounds/internal/domain"
	"github.com/go-petr/pet-rounds/pkg/configpkg"
)

func TestNew(t *testing.T) {
	valid := configpkg.Config{
		Locale:   "en",
		Provider: configpkg.Provider{APIURL: "http://localhost:9000"},
		Users:    []configpkg.User{{Email: "a@mail.com", Password: "secret"}},
	}

	testCases := []struct {
		name    string
		modify  func(c *configpkg.Config)
		wantErr error
	}{
		{
			name:   "OK",
			modify: func(c *configpkg.Config) {},
		},
		{
			name:   "NoUsers",
			modify: func(c *configpkg.Config) { c.Users = nil },
		},
		{
			name: "ShortUserPassword",
			modify: func(c *configpkg.Config) {
				c.Users = []configpkg.User{{Email: "a@mail.com", Password: "12345"}}
			},
			wantErr: domain.ErrPasswordLength,
		},
		{
			name: "MissingUserEmail",
			modify: func(c *configpkg.Config) {
				c.Users = []configpkg.User{{Password: "secret"}}
			},
			wantErr: domain.ErrEmailRequired,
		},
		{
			name:    "UnsupportedLocale",
			modify:  func(c *configpkg.Config) { c.Locale = "xx" },
			wantErr: errors.New("unsupported locale"),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			config := valid
			tc.modify(&config)

			server, err := New(zerolog.Nop(), config)
			if tc.wantErr == nil {
				require.NoError(t, err)
				require.NotNil(t, server.Engine)

				return
			}

			require.Error(t, err)
			require.Nil(t, server)

			if errors.Is(err, tc.wantErr) {
				return
			}

			require.Contains(t, err.Error(), tc.wantErr.Error())
		})
	}
}
