package api

import "fmt"

// Error is a typed request failure surfaced by the HTTP client.
//
// Transport distinguishes "the network failed" (unreachable host, timeout —
// potentially worth retrying by the user) from "the server rejected the
// request". For server rejections Status holds the HTTP status and Detail
// the server's structured error message when the body was parseable.
type Error struct {
	Status    int
	Detail    string
	Transport bool
	cause     error
}

func (e *Error) Error() string {
	if e.Transport {
		return fmt.Sprintf("network failure: %v", e.cause)
	}
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

func (e *Error) Unwrap() error { return e.cause }

// Message is the human-readable text shown to the user: the server's detail
// when present, else a generic fallback.
func (e *Error) Message() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Transport {
		return "could not reach the formatting service"
	}
	return "the formatting service rejected the request"
}
