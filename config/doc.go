// Package config loads the TOML configuration file and provides defaults
// for every setting the daemon and CLI need.
package config
