// Package logging wires the process-wide structured logger and the log
// file retention sweep.
//
// Records go to stdout as JSON; when a log directory is configured they are
// teed into a timestamped file per process start, and Sweep removes files
// older than the retention window on the supervisor's housekeeping tick.
package logging
