// Package server runs the HTTP server and shuts it down gracefully when its
// context is cancelled.
package server
