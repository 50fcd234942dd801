// Package common contains shared constants, sentinel errors, and small
// utilities used across the Rapihin client components.
package common

// AuthorizationHeader is the HTTP header carrying the bearer credential on
// outbound requests.
const AuthorizationHeader = "Authorization"

// BearerPrefix is prepended to the credential in the Authorization header.
const BearerPrefix = "Bearer "

// RequestIDHeader carries a per-request identifier for server-side log
// correlation.
const RequestIDHeader = "X-Request-Id"

// CredentialKey is the fixed key under which the bearer credential is
// persisted in local storage. Absent means logged out.
const CredentialKey = "access_token"

// MaxUploadSizeBytes is the largest document accepted for formatting (10 MiB).
const MaxUploadSizeBytes = 10 << 20

// MinPasswordLength is the client-side password policy checked before any
// network call.
const MinPasswordLength = 6

// FormattedFilePrefix is prepended to the original file name to derive the
// suggested name of a formatted artifact.
const FormattedFilePrefix = "formatted_"
