// Package server runs the forum's HTTP server.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown on SIGTERM, SIGINT or SIGQUIT.
package server
