package notion

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const CodeRateLimited = "rate_limited"

// APIError is the error object the API returns with every non-2xx status.
type APIError struct {
	Status  int    `json:"status,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion: status: %d, code: %s, message: %s", e.Status, e.Code, e.Message)
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Code == "" {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	if apiErr.Status == 0 {
		apiErr.Status = status
	}
	return apiErr
}

// IsRateLimited reports whether err is the API's rate limit response, or
// any error whose message carries the rate limit marker.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == CodeRateLimited || apiErr.Status == http.StatusTooManyRequests {
			return true
		}
	}
	return strings.Contains(err.Error(), CodeRateLimited)
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && (apiErr.Status == http.StatusNotFound || apiErr.Code == "object_not_found")
}
