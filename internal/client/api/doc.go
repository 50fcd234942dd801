// Package api contains the client-side transport for the Rapihin formatting
// service.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering
//     register/login/me, the multipart formatting call, and the history and
//     template reads.
//  2. A concrete HTTP implementation (see HTTPClient) sharing one configured
//     http.Client, attaching the bearer credential and a request id via an
//     interceptor-style request builder, and normalizing failures.
//
// # Error Handling
//
// Auth conditions surface as sentinel errors from internal/common
// (ErrUnauthorized, ErrInvalidCredentials, ErrEmailTaken) matched with
// errors.Is. Everything else is *Error, carrying the HTTP status, the
// server's detail message when the body was structured, and a Transport flag
// separating network failures from server rejections.
//
// # Binary responses
//
// FormatDocument returns the response body byte-for-byte. The body is the
// formatted document; decoding it as text or JSON would corrupt it.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept a
// context.Context and honor cancellation; each call is additionally bounded
// by a timeout (a longer one for the formatting round trip).
package api
