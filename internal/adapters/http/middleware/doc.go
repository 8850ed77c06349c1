// Package middleware holds the inbound HTTP pipeline of the tasks API.
//
// The server installs it on the chi router in this order:
//
//	Recovery, RequestID, CorrelationID, OpenTelemetry, Logging, RateLimit, Timeout
//
// Recovery is outermost so a panic anywhere below still produces a problem
// response. Timeout is innermost so its deadline only covers handler work.
package middleware
