// Package metrics defines the Prometheus collectors for every pipeline
// stage. Collectors register on the default registry at package init and
// are served by the ops endpoint's /metrics handler.
package metrics
