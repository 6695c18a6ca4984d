package httpserver_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-rounds/internal/domain"
	"github.com/go-petr/pet-rounds/internal/integrationtest"
	"github.com/go-petr/pet-rounds/internal/middleware"
	"github.com/go-petr/pet-rounds/internal/roundservice"
	"github.com/go-petr/pet-rounds/internal/test"
)

func get(t *testing.T, server http.Handler, path string, query url.Values) *httptest.ResponseRecorder {
	t.Helper()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path+"?"+query.Encode(), nil)
	server.ServeHTTP(recorder, req)

	return recorder
}

func TestRoundAPI(t *testing.T) {
	provider := test.NewProvider(t)

	creds := test.RandomCredentials()
	page := domain.ResourceSet{
		Resources: []domain.Transaction{
			test.RandomTransaction(1, "-23.50"),
			test.RandomTransaction(2, "100"),
			test.RandomTransaction(3, "-20"),
		},
		Pagination: &domain.Pagination{
			PreviousURI: provider.URL("/v2/transactions?before=1&limit=3"),
			NextURI:     provider.URL("/v2/transactions?after=3&limit=3"),
		},
	}
	provider.AddUser(t, creds, page)

	server := integrationtest.SetupServer(t, provider)

	t.Run("OK", func(t *testing.T) {
		recorder := get(t, server, "/round", url.Values{
			"email":    {creds.Email},
			"password": {creds.Password},
			"limit":    {"3"},
		})
		require.Equal(t, http.StatusOK, recorder.Code)

		want := domain.ResourceSet{
			Resources: roundservice.RoundUp(page.Resources),
			Pagination: &domain.Pagination{
				PreviousURI: provider.URL("/round?before=1&limit=3"),
				NextURI:     provider.URL("/round?after=3&limit=3"),
			},
		}
		require.JSONEq(t, test.MustJSON(t, want), recorder.Body.String())
		require.Contains(t, recorder.Body.String(), `"amount":-30`)
		require.NotEmpty(t, recorder.Header().Get(middleware.RequestIDHeader))

		queries := provider.Queries()
		require.Equal(t, "3", queries[len(queries)-1].Get("limit"))
	})

	t.Run("WrongPassword", func(t *testing.T) {
		recorder := get(t, server, "/round", url.Values{
			"email":    {creds.Email},
			"password": {"wrongPassword"},
		})

		require.Equal(t, http.StatusUnauthorized, recorder.Code)
		require.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))
		require.Equal(t, test.InvalidCredentialsBody, recorder.Body.String())
	})

	t.Run("ShortPassword", func(t *testing.T) {
		recorder := get(t, server, "/round", url.Values{
			"email":    {creds.Email},
			"password": {"12345"},
		})

		require.Equal(t, http.StatusBadRequest, recorder.Code)
		require.Contains(t, recorder.Body.String(), "between 6 and 255")
	})
}

func TestRoundAPIParsingFailure(t *testing.T) {
	provider := test.NewProvider(t)

	creds := test.RandomCredentials()
	provider.AddUser(t, creds, domain.ResourceSet{})
	provider.SetRawTransactions(creds.Email, http.StatusOK, "application/json", `{"resources":[{"id":`)

	server := integrationtest.SetupServer(t, provider)

	recorder := get(t, server, "/round", url.Values{
		"email":    {creds.Email},
		"password": {creds.Password},
	})

	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	require.Equal(t, domain.JSONParsingError, recorder.Body.String())
}

func TestRoundsAPI(t *testing.T) {
	provider := test.NewProvider(t)

	userA, userB, userC := test.RandomCredentials(), test.RandomCredentials(), test.RandomCredentials()

	pageA := domain.ResourceSet{Resources: append(test.RandomDebits(1, 3), test.RandomTransaction(4, "12.30"))}
	pageB := domain.ResourceSet{
		Resources:  test.RandomDebits(10, 2),
		Pagination: &domain.Pagination{NextURI: provider.URL("/v2/transactions?after=11")},
	}
	pageC := domain.ResourceSet{Resources: test.RandomDebits(20, 1)}

	provider.AddUser(t, userA, pageA)
	provider.AddUser(t, userB, pageB)
	provider.AddUser(t, userC, pageC)

	// the first configured user answers last
	provider.SetDelay(userA.Email, 80*time.Millisecond)
	provider.SetDelay(userB.Email, 40*time.Millisecond)

	server := integrationtest.SetupServer(t, provider, userA, userB, userC)

	t.Run("OK", func(t *testing.T) {
		recorder := get(t, server, "/rounds", url.Values{"since": {"2015-01-01"}, "until": {"2017-01-01"}})
		require.Equal(t, http.StatusOK, recorder.Code)

		var want []domain.Transaction
		for _, page := range []domain.ResourceSet{pageA, pageB, pageC} {
			want = append(want, roundservice.RoundUp(page.Resources)...)
		}

		require.JSONEq(t, test.MustJSON(t, domain.ResourceSet{Resources: want}), recorder.Body.String())

		for _, q := range provider.Queries() {
			require.Equal(t, "2015-01-01", q.Get("since"))
			require.Equal(t, "2017-01-01", q.Get("until"))
		}
	})

	t.Run("InvalidDate", func(t *testing.T) {
		recorder := get(t, server, "/rounds", url.Values{"since": {"yesterday"}, "until": {"today"}})

		require.Equal(t, http.StatusBadRequest, recorder.Code)
		require.Contains(t, recorder.Body.String(), `"path":"/rounds"`)
	})

	t.Run("OneUserFails", func(t *testing.T) {
		provider.SetRawTransactions(userB.Email, http.StatusServiceUnavailable, "text/plain", "maintenance")

		recorder := get(t, server, "/rounds", url.Values{"since": {"2015-01-01"}, "until": {"2017-01-01"}})

		require.Equal(t, http.StatusServiceUnavailable, recorder.Code)
		require.Equal(t, "text/plain", recorder.Header().Get("Content-Type"))
		require.Equal(t, "maintenance", recorder.Body.String())
	})
}
