// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Bearer authentication, role gates, request tracing, access logging,
// response compression and the signature check of hardware position reports
// are handled in this package before requests are delegated to the service
// layer.
package http
