// Package ops serves the operational HTTP endpoint: liveness, Prometheus
// metrics and a synthetic test-alert injector that exercises the full
// trigger path end to end.
package ops
