// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the transport layer. Callers can match against them
// with [errors.Is].
var (
	// ErrNoSession is returned when a request carries neither a session
	// cookie nor an "Authorization" header.
	ErrNoSession = errors.New("no session cookie or `Authorization` header")

	// ErrInvalidPathID is returned when a path parameter is not a positive
	// decimal id.
	ErrInvalidPathID = errors.New("invalid id in path")
)
