// Package httpserver runs an http.Handler with configured timeouts and
// graceful shutdown.
//
// Run blocks until its context is cancelled, SIGINT or SIGTERM arrives, or
// Shutdown is called, then drains in-flight requests within the shutdown
// timeout:
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler serves liveness and readiness probes.
package httpserver
