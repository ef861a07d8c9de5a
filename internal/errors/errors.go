// Package errors defines the service error taxonomy. Every failure that can
// cross a layer boundary is one of the constructors below: a kratos error
// carrying a six-digit service code, a stable machine-readable reason, and a
// human-readable message safe to log. The HTTP layer decides separately what
// of this reaches the client.
package errors

import (
	"fmt"

	kerrors "github.com/go-kratos/kratos/v2/errors"
)

// Stable reasons, one per failure class. Callers branch on these via the
// Is* predicates rather than on codes or messages.
const (
	ReasonUnauthenticated     = "UNAUTHENTICATED"
	ReasonUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	ReasonInvalidInput        = "INVALID_INPUT"
	ReasonPersistenceError    = "PERSISTENCE_ERROR"
	ReasonGatewayRejected     = "GATEWAY_REJECTED"
	ReasonGatewayUnavailable  = "GATEWAY_UNAVAILABLE"
	ReasonConfigurationError  = "CONFIGURATION_ERROR"
)

// Unauthenticated reports a request whose bearer token is missing, malformed,
// or rejected by the identity provider.
func Unauthenticated(format string, args ...interface{}) *kerrors.Error {
	return kerrors.New(ErrCodeUnauthenticated, ReasonUnauthenticated, fmt.Sprintf(format, args...))
}

// IdentityUnavailable reports that token verification could not be completed:
// the identity provider was unreachable, timed out, or answered 5xx. Distinct
// from Unauthenticated so callers never conflate "bad token" with "cannot tell".
func IdentityUnavailable(format string, args ...interface{}) *kerrors.Error {
	return kerrors.New(ErrCodeIdentityUnavailable, ReasonUpstreamUnavailable, fmt.Sprintf(format, args...))
}

// InvalidPlan reports a request body that named no recognizable plan.
func InvalidPlan(format string, args ...interface{}) *kerrors.Error {
	return kerrors.New(ErrCodeInvalidPlan, ReasonInvalidInput, fmt.Sprintf(format, args...))
}

// LedgerWriteFailed reports that the pending transaction row could not be
// persisted, so no gateway call was attempted.
func LedgerWriteFailed(format string, args ...interface{}) *kerrors.Error {
	return kerrors.New(ErrCodeLedgerWriteFailed, ReasonPersistenceError, fmt.Sprintf(format, args...))
}

// DuplicateOrder reports a uniqueness collision on the order id column.
func DuplicateOrder(format string, args ...interface{}) *kerrors.Error {
	return kerrors.New(ErrCodeDuplicateOrder, ReasonPersistenceError, fmt.Sprintf(format, args...))
}

// GatewayRejected reports that the payment gateway received the request and
// answered with a non-success status.
func GatewayRejected(format string, args ...interface{}) *kerrors.Error {
	return kerrors.New(ErrCodeGatewayRejected, ReasonGatewayRejected, fmt.Sprintf(format, args...))
}

// GatewayUnavailable reports a transport-level failure talking to the payment
// gateway: connection refused, DNS failure, or deadline exceeded before any
// response arrived.
func GatewayUnavailable(format string, args ...interface{}) *kerrors.Error {
	return kerrors.New(ErrCodeGatewayUnavailable, ReasonGatewayUnavailable, fmt.Sprintf(format, args...))
}

// ConfigInvalid reports bootstrap configuration that failed validation.
// It is only ever raised at startup, never during request handling.
func ConfigInvalid(format string, args ...interface{}) *kerrors.Error {
	return kerrors.New(ErrCodeConfigInvalid, ReasonConfigurationError, fmt.Sprintf(format, args...))
}

func IsUnauthenticated(err error) bool { return kerrors.Reason(err) == ReasonUnauthenticated }

func IsUpstreamUnavailable(err error) bool { return kerrors.Reason(err) == ReasonUpstreamUnavailable }

func IsInvalidInput(err error) bool { return kerrors.Reason(err) == ReasonInvalidInput }

func IsPersistenceError(err error) bool { return kerrors.Reason(err) == ReasonPersistenceError }

func IsGatewayRejected(err error) bool { return kerrors.Reason(err) == ReasonGatewayRejected }

func IsGatewayUnavailable(err error) bool { return kerrors.Reason(err) == ReasonGatewayUnavailable }

func IsConfigurationError(err error) bool { return kerrors.Reason(err) == ReasonConfigurationError }

// ServiceCode extracts the six-digit service code from err, or 0 when err is
// nil or carries no reason (raw errors wrap to a reasonless kratos error).
// Useful for log fields and tests.
func ServiceCode(err error) int32 {
	if err == nil {
		return 0
	}
	if se := kerrors.FromError(err); se.Reason != "" {
		return se.Code
	}
	return 0
}
