// Package config loads and merges application configuration for both the
// comms server and the terminal client.
//
// Configuration is assembled from three sources — environment variables,
// command-line flags, and an optional JSON file — merged with mergo so that
// the first non-zero value for a field wins, then defaulted and validated.
package config
