// Package server wraps http.Server with graceful shutdown, sensible
// timeouts, and environment-based configuration.
//
//	var cfg server.Config
//	config.MustLoad(&cfg)
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(logger))
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := srv.Start(ctx, application); err != nil && !errors.Is(err, context.Canceled) {
//		log.Fatal(err)
//	}
//
// Start blocks until the context is canceled, then drains in-flight
// requests within the configured shutdown timeout.
package server
