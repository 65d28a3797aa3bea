// Package logger builds *slog.Logger values for the service and the CLI.
//
// New takes functional options: WithEnvironment selects format and level
// presets, WithLevelName applies LOG_LEVEL, WithContextExtractors adds
// request-scoped attributes such as the negotiated locale.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "invoicekit"),
//	    logger.WithContextExtractors(locale.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "document rendered",
//	    logger.Style("nordic"),
//	    logger.InvoiceNumber(inv.Number),
//	    logger.Duration(time.Since(start)),
//	)
//
// Attribute helpers keep key names consistent. Error, Errors and
// InvoiceNumber return an empty Attr for zero input, which slog skips.
package logger
