// Package logger builds configured slog.Logger instances for the platform.
//
// The factory produces JSON output for deployed environments and text for
// local development, and decorates the handler so request-scoped values
// (request id, identity, company override) are appended to every record via
// context extractors:
//
//	log := logger.New(
//		logger.WithProduction("avikit"),
//		logger.WithContextExtractors(
//			requestid.LoggerExtractor(),
//			identity.LoggerExtractor(),
//		),
//	)
//	logger.SetAsDefault(log)
package logger
