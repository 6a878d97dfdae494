// Package handlers is the HTTP boundary of the relay: one route set per form
// kind and the error handler that turns submission errors into responses.
//
//	POST /<kind>/submit    201 {success, message, referenceId}
//	POST /<kind>/validate  200 {valid, errors}
//	GET  /<kind>/health    200 {status, service, timestamp}
//
// Failures are rendered as {message} or, for field validation,
// {message: "Form validation failed", errors: [...]}.
package handlers
