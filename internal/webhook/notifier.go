package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"studio/internal/infra"
)

// Notifier posts generated-image notifications to a fixed external endpoint.
// Dispatch is fire and forget: the caller never waits on the outcome and
// failures are logged, never surfaced or retried.
type Notifier struct {
	endpoint string
	client   *http.Client
	logger   infra.Logger
	timeout  time.Duration
}

func New(endpoint string, client *http.Client, logger infra.Logger) *Notifier {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Notifier{
		endpoint: endpoint,
		client:   client,
		logger:   logger,
		timeout:  15 * time.Second,
	}
}

// NotifyGenerated dispatches the notification on its own goroutine and
// returns immediately. An empty endpoint disables the notifier.
func (n *Notifier) NotifyGenerated(imageURL string) {
	if n == nil || n.endpoint == "" {
		return
	}
	go n.post(imageURL)
}

func (n *Notifier) post(imageURL string) {
	body, err := json.Marshal(map[string]string{"imageUrl": imageURL})
	if err != nil {
		n.logger.Warn().Err(err).Msg("webhook: marshal notification failed")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		n.logger.Warn().Err(err).Msg("webhook: create notification request failed")
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.Warn().Err(err).Str("endpoint", n.endpoint).Msg("webhook: notification failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		n.logger.Warn().
			Int("status", resp.StatusCode).
			Str("endpoint", n.endpoint).
			Msg("webhook: notification rejected")
		return
	}

	n.logger.Debug().Str("endpoint", n.endpoint).Msg("webhook: notification delivered")
}
