// Package timeouts defines shared timeout constants used across services.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// UpstreamFetch caps a single outbound HTTP call made on behalf of a widget.
const UpstreamFetch = 5 * time.Second

// HealthProbe caps a single gRPC health check round trip.
const HealthProbe = time.Second
