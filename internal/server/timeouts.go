package server

import "time"

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 90 * time.Second
	idleTimeout  = 60 * time.Second
	// requestTimeout bounds one render: upstream fetches plus the external renderer.
	requestTimeout = 75 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
