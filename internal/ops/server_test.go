package ops_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/OfkoloBai/Osenotify/internal/ops"
	"github.com/OfkoloBai/Osenotify/internal/trigger"
)

// fakeFirer scripts the pipeline's answer for the test endpoint.
type fakeFirer struct {
	decision trigger.Decision
	err      error
	gotBody  []byte
}

func (f *fakeFirer) TestFire(body []byte) (trigger.Decision, error) {
	f.gotBody = body
	return f.decision, f.err
}

func startOps(t *testing.T, f *fakeFirer) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(ops.New(":0", f).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func TestServer_Health(t *testing.T) {
	srv := startOps(t, &fakeFirer{})

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "OK" {
		t.Errorf("body: got %q, want OK", body)
	}
}

func TestServer_HealthRejectsPost(t *testing.T) {
	srv := startOps(t, &fakeFirer{})

	resp, err := http.Post(srv.URL+"/health", "text/plain", nil)
	if err != nil {
		t.Fatalf("POST /health: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status: got %d, want 405", resp.StatusCode)
	}
}

func TestServer_Metrics(t *testing.T) {
	srv := startOps(t, &fakeFirer{})

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "go_goroutines") {
		t.Error("metrics exposition missing standard collectors")
	}
}

func TestServer_TestAlert(t *testing.T) {
	f := &fakeFirer{decision: trigger.Accepted}
	srv := startOps(t, f)

	resp, err := http.Post(srv.URL+"/api/v1/test", "application/json",
		strings.NewReader(`{"place": "drill"}`))
	if err != nil {
		t.Fatalf("POST /api/v1/test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: got %d, want 200", resp.StatusCode)
	}
	var out map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out["result"] != "accepted" {
		t.Errorf("result: got %q, want accepted", out["result"])
	}
	if !strings.Contains(string(f.gotBody), "drill") {
		t.Errorf("pipeline body: got %q", f.gotBody)
	}
}

func TestServer_TestAlertEmptyBody(t *testing.T) {
	f := &fakeFirer{decision: trigger.DeniedCooldown}
	srv := startOps(t, f)

	resp, err := http.Post(srv.URL+"/api/v1/test", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /api/v1/test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: got %d, want 200", resp.StatusCode)
	}
	if string(f.gotBody) != "{}" {
		t.Errorf("pipeline body for empty request: got %q, want {}", f.gotBody)
	}
	var out map[string]string
	json.NewDecoder(resp.Body).Decode(&out) //nolint:errcheck
	if out["result"] != "cooldown" {
		t.Errorf("result: got %q, want cooldown", out["result"])
	}
}

func TestServer_TestAlertBadPayload(t *testing.T) {
	f := &fakeFirer{err: errors.New("test: parse: bad json")}
	srv := startOps(t, f)

	resp, err := http.Post(srv.URL+"/api/v1/test", "application/json",
		strings.NewReader("not json"))
	if err != nil {
		t.Fatalf("POST /api/v1/test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", resp.StatusCode)
	}
	var out map[string]string
	json.NewDecoder(resp.Body).Decode(&out) //nolint:errcheck
	if out["error"] == "" {
		t.Error("error message missing from response")
	}
}

func TestServer_TestAlertRejectsGet(t *testing.T) {
	srv := startOps(t, &fakeFirer{})

	resp, err := http.Get(srv.URL + "/api/v1/test")
	if err != nil {
		t.Fatalf("GET /api/v1/test: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status: got %d, want 405", resp.StatusCode)
	}
}
