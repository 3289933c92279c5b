// Package server runs an http.Handler with graceful shutdown.
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	return srv.Serve(ctx, router)
//
// Serve returns nil once ctx is canceled and in-flight requests have drained
// within SERVER_SHUTDOWN_TIMEOUT. Run wraps Serve for errgroup. HTTPS is
// enabled by SERVER_TLS_CERT_FILE and SERVER_TLS_KEY_FILE.
package server
