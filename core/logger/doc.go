// Package logger builds slog loggers and provides attribute helpers for
// common fields.
//
//	log := logger.New(
//		logger.WithDevelopment("formauth"),
//		logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
//			id, ok := middleware.UserIDFromContext(ctx)
//			return logger.UserID(id), ok
//		}),
//	)
//
//	log.InfoContext(ctx, "profile updated", logger.Component("account"))
//
// Attribute helpers return an empty slog.Attr for nil or empty input, so they
// can be passed unconditionally:
//
//	log.Error("sign in failed", logger.Error(err), logger.UserID(userID))
package logger
