// Package http implements the HTTP transport layer of the server.
//
// It exposes route wiring, request handlers and middleware for the REST API.
// Request tracing, access logging, response compression and session
// authentication are handled here before requests reach the service layer.
// Service errors are translated to status codes in one place,
// statusFromError, and only the sentinel's message is sent to clients.
package http
