// Package feed connects to the upstream earthquake warning streams and
// normalizes their frames into alert events.
//
// Each source has its own wire format and decoder; the Connector is shared.
// It keeps one websocket connection alive per source, probes it with pings,
// and reconnects after a fixed delay on any failure. Frames reach the
// handler in arrival order, and a handler error never ends the connection.
package feed
