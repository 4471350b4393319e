package notifications

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"issue_translator/internal/processing"
	"issue_translator/internal/retry"

	"github.com/rs/zerolog/log"
)

// Client posts plain-text messages to an ntfy topic.
type Client struct {
	httpClient *http.Client
	baseURL    string
	topic      string
	enabled    bool
	priority   string
	policy     retry.Config

	totalSent   atomic.Int64
	totalFailed atomic.Int64
}

type NotificationError struct {
	Type       string
	StatusCode int
	Underlying error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notification failed [%s]: %v", e.Type, e.Underlying)
}

func (e *NotificationError) Unwrap() error {
	return e.Underlying
}

func (e *NotificationError) IsRetryable() bool {
	switch e.Type {
	case "network", "server", "rate_limit":
		return true
	case "auth", "client":
		return false
	default:
		return e.StatusCode >= 500
	}
}

func NewClient(baseURL, topic string, enabled bool, priority string, policy retry.Config) *Client {
	policy.Retryable = isRetryable
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		topic:    topic,
		enabled:  enabled,
		priority: priority,
		policy:   policy,
	}
}

func (c *Client) Enabled() bool {
	return c != nil && c.enabled
}

func (c *Client) SendNotification(ctx context.Context, message string) error {
	if !c.Enabled() {
		log.Debug().Msg("Notifications disabled, skipping")
		return nil
	}

	_, err := retry.WithRetry(ctx, c.policy, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.sendSingleNotification(ctx, message)
	})
	if err != nil {
		c.totalFailed.Add(1)
		return err
	}
	c.totalSent.Add(1)
	return nil
}

func (c *Client) sendSingleNotification(ctx context.Context, message string) error {
	url := fmt.Sprintf("%s/%s", c.baseURL, c.topic)

	log.Debug().
		Str("url", url).
		Str("message", message).
		Msg("Sending notification")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBufferString(message))
	if err != nil {
		return &NotificationError{Type: "client", Underlying: err}
	}

	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("Title", "Issue export")
	if c.priority != "" {
		req.Header.Set("Priority", c.priority)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NotificationError{Type: "network", Underlying: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return &NotificationError{
			Type:       categorizeHTTPError(resp.StatusCode),
			StatusCode: resp.StatusCode,
			Underlying: fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status),
		}
	}

	log.Debug().Int("status_code", resp.StatusCode).Msg("Notification sent successfully")
	return nil
}

// NotifyExport sends one message summarising the exported sheets. Failures
// are logged, never returned: a notification must not fail an export.
func (c *Client) NotifyExport(ctx context.Context, summaries []processing.Summary, exportErr error) {
	if !c.Enabled() {
		return
	}

	message := FormatExportMessage(summaries, exportErr)
	if err := c.SendNotification(ctx, message); err != nil {
		log.Warn().Err(err).Msg("Failed to send export notification")
	}
}

const maxSheetsToShow = 10

func FormatExportMessage(summaries []processing.Summary, exportErr error) string {
	var sb strings.Builder

	if exportErr != nil {
		fmt.Fprintf(&sb, "Export failed after %d sheet(s): %v\n", len(summaries), exportErr)
	} else if len(summaries) == 1 {
		sb.WriteString("Exported 1 sheet\n")
	} else {
		fmt.Fprintf(&sb, "Exported %d sheets\n", len(summaries))
	}

	for i, s := range summaries {
		if i == maxSheetsToShow {
			fmt.Fprintf(&sb, "... and %d more sheets\n", len(summaries)-maxSheetsToShow)
			break
		}
		fmt.Fprintf(&sb, "• %s: %d rows, %d columns (%d keys, %d users, %d comments rewritten)\n",
			s.Sheet, s.Rows, s.Columns, s.Keys, s.Users, s.Comments)
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func isRetryable(err error) bool {
	var notifErr *NotificationError
	if errors.As(err, &notifErr) {
		return notifErr.IsRetryable()
	}
	return true
}

func categorizeHTTPError(statusCode int) string {
	switch {
	case statusCode == 401 || statusCode == 403:
		return "auth"
	case statusCode == 429:
		return "rate_limit"
	case statusCode >= 400 && statusCode < 500:
		return "client"
	case statusCode >= 500:
		return "server"
	default:
		return "unknown"
	}
}

// GetMetrics returns how many notifications were sent and how many failed.
func (c *Client) GetMetrics() (sent, failed int64) {
	return c.totalSent.Load(), c.totalFailed.Load()
}
