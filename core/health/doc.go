// Package health provides HTTP handlers for service health monitoring.
//
// Handlers:
//   - Liveness: Process is running (no dependency checks)
//   - Readiness: All dependencies are available
//   - NoContent: Returns 204 for minimal overhead
//
// Usage:
//
//	r.HandleFunc("/health/live", health.Liveness)
//	r.Handle("/health/ready", health.Readiness(log, func(ctx context.Context) error {
//		return redisClient.Ping(ctx).Err()
//	}))
package health
