// Package notify renders accepted triggers into push notifications and
// delivers them to a Gotify server.
//
// Delivery is decoupled from ingestion: the Dispatcher feeds a fixed pool
// of workers from a bounded queue, and each delivery retries with capped
// exponential backoff. A notification that exhausts its budget is dropped;
// delivery failures never feed back into trigger state.
package notify
