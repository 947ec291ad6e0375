// Package server runs the bin server HTTP listener.
//
// It owns startup, signal handling and graceful shutdown.
package server
