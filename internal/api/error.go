package api

import (
	"fmt"
	"net/http"
)

// Kind identifies a class of failure. Values are the snake_case codes used
// on the wire, so a server-declared error code converts to a Kind directly.
type Kind string

const (
	// Crypto/container kinds.
	KindInvalidContainerData        Kind = "invalid_container_data"
	KindUnsupportedContainerVersion Kind = "unsupported_container_version"
	KindInvalidEncryptionParams     Kind = "invalid_encryption_params"
	KindInvalidKeyWrapParams        Kind = "invalid_key_wrap_params"
	KindInvalidKeyParams            Kind = "invalid_key_params"
	KindDecryptionFailed            Kind = "decryption_failed"
	KindEncryptionFailed            Kind = "encryption_failed"
	KindNotSupported                Kind = "not_supported"
	KindPublicKeyMismatch           Kind = "public_key_mismatch"
	KindMissingAccess               Kind = "missing_access"

	// Transport kinds.
	KindFailedConnection   Kind = "failed_connection"
	KindUnexpectedRedirect Kind = "unexpected_redirect"

	// Server/application kinds.
	KindBadRequest               Kind = "bad_request"
	KindInvalidSession           Kind = "invalid_session"
	KindSessionExpired           Kind = "session_expired"
	KindDeprecatedAPIVersion     Kind = "deprecated_api_version"
	KindInsufficientPermissions  Kind = "insufficient_permissions"
	KindRateLimitExceeded        Kind = "rate_limit_exceeded"
	KindInvalidCredentials       Kind = "invalid_credentials"
	KindAccountExists            Kind = "account_exists"
	KindEmailVerificationFailed  Kind = "email_verification_failed"
	KindInvalidResponse          Kind = "invalid_response"
	KindInvalidRequest           Kind = "invalid_request"
	KindMergeConflict            Kind = "merge_conflict"
	KindMaxRequestSizeExceeded   Kind = "max_request_size_exceeded"
	KindStorageQuotaExceeded     Kind = "storage_quota_exceeded"

	// Generic fallback kinds.
	KindClientError   Kind = "client_error"
	KindServerError   Kind = "server_error"
	KindUnknownError  Kind = "unknown_error"
	KindEncodingError Kind = "encoding_error"
	KindNotFound      Kind = "not_found"
	KindInvalidData   Kind = "invalid_data"
)

// Kinds lists every declared Kind. Kept in sync with the constants above;
// the default tables below are only allowed to reference members of this set.
var Kinds = []Kind{
	KindInvalidContainerData, KindUnsupportedContainerVersion,
	KindInvalidEncryptionParams, KindInvalidKeyWrapParams,
	KindInvalidKeyParams, KindDecryptionFailed, KindEncryptionFailed,
	KindNotSupported, KindPublicKeyMismatch, KindMissingAccess,
	KindFailedConnection, KindUnexpectedRedirect,
	KindBadRequest, KindInvalidSession, KindSessionExpired,
	KindDeprecatedAPIVersion, KindInsufficientPermissions,
	KindRateLimitExceeded, KindInvalidCredentials, KindAccountExists,
	KindEmailVerificationFailed, KindInvalidResponse, KindInvalidRequest,
	KindMergeConflict, KindMaxRequestSizeExceeded, KindStorageQuotaExceeded,
	KindClientError, KindServerError, KindUnknownError, KindEncodingError,
	KindNotFound, KindInvalidData,
}

// defaultMessages maps a subset of kinds to a human-readable default.
// Kinds absent here fall back to the cause's message, then "".
var defaultMessages = map[Kind]string{
	KindFailedConnection:        "could not establish a connection with the server",
	KindInvalidSession:          "invalid session",
	KindSessionExpired:          "your session has expired, please log in again",
	KindDeprecatedAPIVersion:    "your app version is out of date, please update",
	KindInsufficientPermissions: "you do not have permission to perform this action",
	KindRateLimitExceeded:       "too many requests, please try again later",
	KindInvalidCredentials:      "invalid email address or password",
	KindAccountExists:           "an account with this email address already exists",
	KindServerError:             "something went wrong on our end, please try again later",
}

// defaultStatuses maps a subset of kinds to an HTTP status.
// Kinds absent here fall back to 500.
var defaultStatuses = map[Kind]int{
	KindBadRequest:              http.StatusBadRequest,
	KindInvalidRequest:          http.StatusBadRequest,
	KindInvalidData:             http.StatusBadRequest,
	KindClientError:             http.StatusBadRequest,
	KindInvalidSession:          http.StatusUnauthorized,
	KindSessionExpired:          http.StatusUnauthorized,
	KindInvalidCredentials:      http.StatusUnauthorized,
	KindInsufficientPermissions: http.StatusForbidden,
	KindMissingAccess:           http.StatusForbidden,
	KindNotFound:                http.StatusNotFound,
	KindDeprecatedAPIVersion:    http.StatusNotAcceptable,
	KindAccountExists:           http.StatusConflict,
	KindMergeConflict:           http.StatusConflict,
	KindMaxRequestSizeExceeded:  http.StatusRequestEntityTooLarge,
	KindRateLimitExceeded:       http.StatusTooManyRequests,
	KindStorageQuotaExceeded:    http.StatusInsufficientStorage,
}

// Error is the single failure type surfaced at the pipeline boundary.
// Kind is set at construction and never changed afterwards. Report and
// Display are advisory metadata for telemetry/UI layers; the client itself
// does not act on them.
type Error struct {
	Kind    Kind
	Message string
	Status  int
	Report  bool
	Display bool
	Cause   error
}

// Option adjusts an Error during construction.
type Option func(*Error)

// WithMessage overrides the kind's default message.
func WithMessage(msg string) Option {
	return func(e *Error) { e.Message = msg }
}

// WithStatus overrides the kind's default HTTP status.
func WithStatus(status int) Option {
	return func(e *Error) { e.Status = status }
}

// WithCause attaches the lower-level error this one wraps. If no explicit
// message is given and the kind has no default, the cause's message is used.
func WithCause(err error) Option {
	return func(e *Error) { e.Cause = err }
}

// Reportable marks the error for telemetry. It also sets Display from the
// same flag; the two are currently coupled (see DESIGN.md).
func Reportable(v bool) Option {
	return func(e *Error) {
		e.Report = v
		e.Display = v
	}
}

// NewError constructs an Error of the given kind. Message resolves in
// priority order: explicit option, table default, cause message, empty.
// Status resolves: explicit option, table default, 500.
func NewError(kind Kind, opts ...Option) *Error {
	e := &Error{Kind: kind}
	for _, opt := range opts {
		opt(e)
	}
	if e.Message == "" {
		if msg, ok := defaultMessages[kind]; ok {
			e.Message = msg
		} else if e.Cause != nil {
			e.Message = e.Cause.Error()
		}
	}
	if e.Status == 0 {
		if status, ok := defaultStatuses[kind]; ok {
			e.Status = status
		} else {
			e.Status = http.StatusInternalServerError
		}
	}
	return e
}

// Error renders the error as "<kind>: <message>" for logs.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the wrapped cause, if any, so errors.Is/As see through it.
func (e *Error) Unwrap() error {
	return e.Cause
}
