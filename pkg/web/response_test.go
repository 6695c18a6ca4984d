package web

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewErrorMessage(t *testing.T) {
	before := time.Now().UnixMilli()
	got := NewErrorMessage(http.StatusBadRequest, "/round", "wrong password")
	after := time.Now().UnixMilli()

	require.Equal(t, http.StatusBadRequest, got.Status)
	require.Equal(t, "bad request", got.Error)
	require.Equal(t, "/round", got.Path)
	require.Equal(t, "wrong password", got.Message)
	require.Empty(t, got.Exception)
	require.GreaterOrEqual(t, got.Timestamp, before)
	require.LessOrEqual(t, got.Timestamp, after)
}

func TestErrorMessageJSON(t *testing.T) {
	msg := ErrorMessage{
		Timestamp: 1500000000000,
		Status:    http.StatusInternalServerError,
		Error:     "internal server error",
		Path:      "/rounds",
		Message:   "internal",
	}

	data, err := json.Marshal(msg)
	require.NoError(t, err)
	require.JSONEq(t,
		`{"timestamp":1500000000000,"status":500,"error":"internal server error","path":"/rounds","message":"internal"}`,
		string(data))

	msg.Exception = "dial tcp: connection refused"

	data, err = json.Marshal(msg)
	require.NoError(t, err)
	require.Contains(t, string(data), `"exception":"dial tcp: connection refused"`)
}
