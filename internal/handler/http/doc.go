// Package http implements the read-only HTTP transport of the environment
// server.
//
// It serves the validated environment record to running frontends, the build
// version, and an on-demand identity-provider check. Request tracing, access
// logging, response compression and method checks are applied here before the
// service layer is reached.
package http
