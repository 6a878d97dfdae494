// Package health provides HTTP handlers for liveness and readiness checks.
//
// [LivenessHandler] always answers OK while the process runs.
// [ReadinessHandler] runs named [Checks] in parallel under a shared timeout.
// [ServiceHandler] reports a single named service as up together with the
// current time, for per-form-kind status endpoints.
//
// Liveness and readiness answer plain text unless the caller asks for JSON
// with "Accept: application/json" or "?format=json":
//
//	{"status":"unhealthy","checks":{"mailer":{"status":"unhealthy","error":"timeout"}}}
package health
