// Package internal provides the HTTP application runtime of the relay.
//
// It keeps handlers small: a [HandlerFunc] returns an error instead of writing
// failures itself, and the app's [ErrorHandler] turns that error into the
// response. [HTTPError] carries an explicit status code and body; anything else
// becomes a 500.
//
//	app := internal.New(
//	    internal.WithLogger(log),
//	    internal.WithMiddleware(middlewares.RequestID(), middlewares.Recover(log)),
//	    internal.WithHealthChecks(health.Checks{"provider": mailer.Healthcheck(sender)}),
//	    internal.WithHandlers(relay.NewHandler(sender, relay.WithLogger(log))),
//	)
//
//	err := app.Run("0.0.0.0:8002",
//	    internal.ShutdownTimeout(30*time.Second),
//	    internal.ShutdownHook(logger.Flush),
//	)
//
// Run blocks until SIGINT/SIGTERM, drains in-flight requests and then runs the
// shutdown hooks in order.
package internal
