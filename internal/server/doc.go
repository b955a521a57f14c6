// Package server runs the HTTP API and the optional gRPC health endpoint of
// the positioning backend until a termination signal arrives or one of them
// fails, then drains both.
package server
