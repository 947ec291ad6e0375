// Package http implements the bin server REST API.
//
// It exposes the create, read and overwrite endpoints for encrypted bins
// together with health and Prometheus endpoints. Request tracing, access
// logging, rate limiting, body limits and response compression are handled
// here before requests reach the service layer.
package http
