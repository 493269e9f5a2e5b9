package ops

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/OfkoloBai/Osenotify/internal/trigger"
)

// maxTestBody caps the request body accepted by the test-alert endpoint.
const maxTestBody = 64 << 10

// TestFirer injects one synthetic frame through the trigger pipeline and
// reports the gate's decision.
type TestFirer interface {
	TestFire(body []byte) (trigger.Decision, error)
}

// Server is the operational HTTP endpoint.
type Server struct {
	pipeline TestFirer
	srv      *http.Server
}

// New creates a Server on addr and registers all routes.
func New(addr string, pipeline TestFirer) *Server {
	s := &Server{pipeline: pipeline}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.health)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/api/v1/test", s.testAlert)

	s.srv = &http.Server{Addr: addr, Handler: mux}
	return s
}

// Handler exposes the route table for tests.
func (s *Server) Handler() http.Handler { return s.srv.Handler }

// Serve blocks on the listener until Shutdown. The http.ErrServerClosed
// returned after a clean shutdown is passed through for the caller to filter.
func (s *Server) Serve() error {
	return s.srv.ListenAndServe()
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// --- route handlers ---------------------------------------------------------

// health serves GET /health, the plain-text liveness probe.
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK")) //nolint:errcheck
}

// testAlert handles POST /api/v1/test: runs a synthetic event through the
// full pipeline and reports the gate decision. An empty body is allowed and
// injects a bare test event.
func (s *Server) testAlert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxTestBody))
	if err != nil {
		jsonErr(w, http.StatusBadRequest, "read body: "+err.Error())
		return
	}
	if len(body) == 0 {
		body = []byte("{}")
	}

	decision, err := s.pipeline.TestFire(body)
	if err != nil {
		jsonErr(w, http.StatusBadRequest, err.Error())
		return
	}
	jsonResp(w, http.StatusOK, testResponse{Result: decision.String()})
}

// --- response helpers -------------------------------------------------------

type testResponse struct {
	Result string `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func jsonResp(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonErr(w http.ResponseWriter, code int, msg string) {
	jsonResp(w, code, errorResponse{Error: msg})
}
