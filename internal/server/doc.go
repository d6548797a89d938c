// Package server runs the HTTP API and the gRPC health endpoint side by side.
//
// The first transport to fail stops the others, so a port that cannot be
// bound ends the process instead of leaving it half up.
package server
