// Package config provides configuration loading, merging, and validation
// facilities for the settings client.
//
// Configuration is assembled from multiple sources in the following priority
// order (a non-zero field from an earlier source is never overridden):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig].
package config
