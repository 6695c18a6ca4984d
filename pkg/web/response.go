// Package web defines common components for a web application.
package web

import (
	"net/http"
	"strings"
	"time"
)

// ErrorMessage is the error envelope returned for failed requests.
type ErrorMessage struct {
	Timestamp int64  `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Path      string `json:"path"`
	Message   string `json:"message"`
	Exception string `json:"exception,omitempty"`
}

// NewErrorMessage returns an envelope stamped with the current time.
// The error label is the lower-cased status text, e.g. "bad request".
func NewErrorMessage(status int, path, message string) ErrorMessage {
	return ErrorMessage{
		Timestamp: time.Now().UnixMilli(),
		Status:    status,
		Error:     strings.ToLower(http.StatusText(status)),
		Path:      path,
		Message:   message,
	}
}
