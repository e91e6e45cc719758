package server

import "time"

const (
	// DefaultReadTimeout bounds how long reading a full request may take.
	DefaultReadTimeout = 15 * time.Second

	// DefaultWriteTimeout bounds how long writing a response may take.
	DefaultWriteTimeout = 15 * time.Second

	// DefaultIdleTimeout closes keep-alive connections that stay idle this long.
	DefaultIdleTimeout = 60 * time.Second

	// DefaultShutdownTimeout caps how long graceful shutdown waits for
	// in-flight requests to drain.
	DefaultShutdownTimeout = 30 * time.Second

	// DefaultMaxHeaderBytes caps the size of request headers.
	DefaultMaxHeaderBytes = 1 << 20 // 1 MB
)
