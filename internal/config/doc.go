// Package config loads and validates the Osenotify configuration.
//
// Settings come from three layers, later layers winning: built-in defaults,
// an optional YAML file, and the QUAKE_* environment variables kept for
// compatibility with existing deployments. Secrets are never stored in the
// file; the config names the environment variable that holds them.
package config
