package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Pusher delivers one notification to the push endpoint.
type Pusher interface {
	Push(ctx context.Context, n Notification) error
}

// Gotify pushes notifications to a Gotify server's message API.
type Gotify struct {
	base   string
	token  string
	client *http.Client
}

// NewGotify builds a client for the Gotify server at base url, posting with
// the given application token. timeout bounds each delivery attempt.
func NewGotify(baseURL, token string, timeout time.Duration) *Gotify {
	return &Gotify{
		base:   strings.TrimRight(baseURL, "/"),
		token:  token,
		client: &http.Client{Timeout: timeout},
	}
}

// Push POSTs n to {base}/message?token={token}. Any non-2xx response is an
// error; the body is not read beyond the status.
func (g *Gotify) Push(ctx context.Context, n Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	endpoint := g.base + "/message?token=" + url.QueryEscape(g.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("http post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("push endpoint returned HTTP %d", resp.StatusCode)
	}
	return nil
}
