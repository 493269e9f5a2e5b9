// Package monitor ties the pipeline together and owns its lifecycle.
//
// The Pipeline runs each inbound frame through normalization, threshold
// evaluation and the trigger gate, and hands accepted triggers to the
// dispatcher. The Supervisor starts one connector per feed plus the
// housekeeping ticker, exposes pause and resume, and winds everything down
// cooperatively when its context is cancelled.
package monitor
