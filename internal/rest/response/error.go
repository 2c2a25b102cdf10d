package response

import (
	"net/http"
	"strings"
	"time"
)

// ErrorDetails is the body of every domain error response.
type ErrorDetails struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Path      string    `json:"path"`
}

func NewErrorDetails(status int, message, path string) ErrorDetails {
	return ErrorDetails{
		Timestamp: time.Now(),
		Message:   message,
		Status:    StatusName(status),
		Path:      path,
	}
}

// StatusName renders a status code as its upper snake case name, e.g. 404 -> "NOT_FOUND".
func StatusName(status int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}
