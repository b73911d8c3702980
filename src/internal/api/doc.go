// Package api implements the HTTP surface of otp-netsetting.
//
// The API is the backend of the web presentation layer: it validates
// selection submissions, probes priority assignments at selection time and
// serves the generated configuration artifact as a download. All state is
// per-request; handlers share nothing mutable.
package api
