package config

import (
	"errors"
	"net/http"
	"time"

	"issue_translator/internal/retry"

	"google.golang.org/api/googleapi"
)

type ResilienceConfig struct {
	SheetRead    retry.Config
	SheetWrite   retry.Config
	Notification retry.Config
}

var DefaultResilienceConfig = ResilienceConfig{
	SheetRead: retry.Config{
		Name:       "sheet read",
		MaxRetries: 3,
		BaseDelay:  2 * time.Second,
		MaxDelay:   30 * time.Second,
		Timeout:    30 * time.Second,
		Retryable:  IsTransientAPIError,
	},
	SheetWrite: retry.Config{
		Name:       "sheet write",
		MaxRetries: 3,
		BaseDelay:  2 * time.Second,
		MaxDelay:   30 * time.Second,
		Timeout:    30 * time.Second,
		Retryable:  IsTransientAPIError,
	},
	Notification: retry.Config{
		Name:       "notification",
		MaxRetries: 2,
		BaseDelay:  1 * time.Second,
		MaxDelay:   10 * time.Second,
		Timeout:    10 * time.Second,
	},
}

// IsTransientAPIError reports whether a Google API error is worth retrying:
// rate limiting, server errors, and anything that is not an API response.
func IsTransientAPIError(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return true
	}
	return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
}
