// Package config provides configuration loading, merging, and validation
// facilities for the panel and the bin server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables, after an optional .env file is loaded
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetClientConfig] for the panel and
// [GetServerConfig] for the bin server.
package config
