package tandem

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tandem-a2a/tandem/a2a"
)

//go:generate go tool mockgen -source=push_notifier.go -destination=mock_push_notifier_test.go -package=tandem

// PushNotifier delivers the final task snapshot to a configured endpoint
// after the task's session completes. Delivery is at-least-once and failures
// are logged, never surfaced to the client that registered the config.
type PushNotifier interface {
	Notify(ctx context.Context, config a2a.PushNotificationConfig, task *a2a.Task) error
	ValidateEndpoint(ctx context.Context, config a2a.PushNotificationConfig) error
	Close() error
}

// PushNotificationError reports a webhook that answered outside the 2xx
// range.
type PushNotificationError struct {
	StatusCode int
	URL        string
}

func (e *PushNotificationError) Error() string {
	return fmt.Sprintf("push notification failed: HTTP %d for URL %s", e.StatusCode, e.URL)
}

// DefaultPushNotifier posts the task snapshot as JSON to the config URL.
// Bearer credentials from the config go in Authorization; the client-chosen
// token rides in X-A2A-Notification-Token so receivers can correlate.
type DefaultPushNotifier struct {
	Client *http.Client
}

// NewDefaultPushNotifier returns a notifier with a 30 second request timeout.
func NewDefaultPushNotifier() *DefaultPushNotifier {
	return &DefaultPushNotifier{
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (n *DefaultPushNotifier) Notify(ctx context.Context, config a2a.PushNotificationConfig, task *a2a.Task) error {
	payload, err := json.Marshal(task)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, config.URL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if config.Authentication != nil && config.Authentication.Credentials != "" {
		req.Header.Set("Authorization", "Bearer "+config.Authentication.Credentials)
	}
	if config.Token != "" {
		req.Header.Set("X-A2A-Notification-Token", config.Token)
	}

	resp, err := n.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &PushNotificationError{StatusCode: resp.StatusCode, URL: config.URL}
	}
	return nil
}

// ValidateEndpoint accepts every endpoint; reachability is only proven by an
// actual delivery.
func (n *DefaultPushNotifier) ValidateEndpoint(ctx context.Context, config a2a.PushNotificationConfig) error {
	return nil
}

func (n *DefaultPushNotifier) Close() error {
	return nil
}
