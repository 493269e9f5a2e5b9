package feed

import (
	"context"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"github.com/OfkoloBai/Osenotify/internal/alert"
	"github.com/OfkoloBai/Osenotify/internal/metrics"
)

const (
	// handshakeTimeout bounds the websocket dial.
	handshakeTimeout = 10 * time.Second

	// pingPeriod controls how often the connector sends ping frames to
	// probe the feed.
	pingPeriod = 25 * time.Second

	// pongWait is the grace period past a ping for any traffic before the
	// connection is treated as dead.
	pongWait = 10 * time.Second

	// writeTimeout is the deadline for a single ping write.
	writeTimeout = 10 * time.Second
)

// Handler consumes one raw frame. A handler error is logged and the read
// loop continues; one bad frame never costs the connection.
type Handler func(src alert.Source, raw []byte) error

// Connector maintains one long-lived websocket connection to an upstream
// feed, handing every inbound frame to its handler in arrival order. Any
// failure, dial included, is logged and retried after a fixed delay.
// Connector never returns control except on context cancellation.
type Connector struct {
	source  alert.Source
	url     string
	delay   time.Duration
	handler Handler
	dialer  *websocket.Dialer
}

// NewConnector creates a Connector for src at url. reconnectDelay is the
// fixed wait between connection attempts.
func NewConnector(src alert.Source, url string, reconnectDelay time.Duration, handler Handler) *Connector {
	return &Connector{
		source:  src,
		url:     url,
		delay:   reconnectDelay,
		handler: handler,
		dialer:  &websocket.Dialer{HandshakeTimeout: handshakeTimeout},
	}
}

// Run dials and reads until ctx is cancelled. Run blocks; call it in a
// goroutine per feed.
func (c *Connector) Run(ctx context.Context) {
	src := c.source.String()

	for {
		if ctx.Err() != nil {
			return
		}

		conn, resp, err := c.dialer.DialContext(ctx, c.url, nil)
		if err != nil {
			if resp != nil {
				resp.Body.Close()
			}
			if ctx.Err() != nil {
				return
			}
			slog.Error("feed: dial failed, will retry",
				"source", src, "url", c.url, "retry_in", c.delay, "err", err)
			if !c.wait(ctx) {
				return
			}
			continue
		}

		slog.Info("feed: connected", "source", src, "url", c.url)
		metrics.FeedConnected.WithLabelValues(src).Set(1)

		err = c.pump(ctx, conn)
		conn.Close()
		metrics.FeedConnected.WithLabelValues(src).Set(0)

		if ctx.Err() != nil {
			return
		}

		metrics.Reconnects.WithLabelValues(src).Inc()
		slog.Warn("feed: connection lost, will reconnect",
			"source", src, "retry_in", c.delay, "err", err)
		if !c.wait(ctx) {
			return
		}
	}
}

// pump reads frames from conn until the connection fails, pinging it every
// pingPeriod. The read deadline allows one full ping cycle plus the pong
// grace; every inbound frame or pong extends it. A silent feed therefore
// dies within pingPeriod+pongWait and goes back through the dial loop.
func (c *Connector) pump(ctx context.Context, conn *websocket.Conn) error {
	src := c.source.String()

	extend := func() time.Time { return time.Now().Add(pingPeriod + pongWait) }
	conn.SetReadDeadline(extend()) //nolint:errcheck
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(extend()) //nolint:errcheck
		return nil
	})

	done := make(chan struct{})
	defer close(done)

	// Ping loop. Also closes the connection on ctx cancellation so the
	// blocking read below returns promptly.
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				conn.Close()
				return
			case <-ticker.C:
				conn.SetWriteDeadline(time.Now().Add(writeTimeout)) //nolint:errcheck
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					// The read side hits its deadline shortly; nothing to do.
					return
				}
			}
		}
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		conn.SetReadDeadline(extend()) //nolint:errcheck

		metrics.MessagesReceived.WithLabelValues(src).Inc()
		if err := c.handler(c.source, raw); err != nil {
			slog.Error("feed: handler rejected frame", "source", src, "err", err)
		}
	}
}

// wait sleeps the reconnect delay; false means ctx was cancelled first.
func (c *Connector) wait(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(c.delay):
		return true
	}
}
