// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute
// constructors, and transparent injection of values stored in
// context.Context.
//
// The single factory, New, creates a *slog.Logger configured by a set of
// Option functions:
//
//   - Select an output format (text or json)
//   - Set the minimum log level
//   - Supply default slog.Attr values applied to every record
//   - Register ContextExtractor callbacks that inject attributes pulled
//     from a context value (for example a request id) on every record.
//
// Helper constructors such as Group, Error, UserID or PriceID live in
// attr.go and keep attribute naming consistent across the codebase.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithProduction("storefront"),
//	    logger.WithContextValue("request_id", ctxKeyRequestID),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "checkout created",
//	    logger.UserID(userID),
//	    logger.PriceID(priceID),
//	)
//
// Error and Errors produce attributes only when the supplied error is
// non-nil, so they can be passed unconditionally:
//
//	log.Info("operation finished", logger.Error(err))
package logger
