package alpaca

import (
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// APIError is a non-2xx answer from the brokerage. Message holds the
// structured error body's message when one was parseable, the HTTP status
// text otherwise.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("alpaca: %s (status %d)", e.Message, e.StatusCode)
}

func apiError(resp *resty.Response) error {
	msg := resp.Status()
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Message != "" {
		msg = body.Message
	}
	return &APIError{StatusCode: resp.StatusCode(), Message: msg}
}
