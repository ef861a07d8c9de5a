package errors

// Checkout service error codes.
// Code format: SSMMEE (6 digits), where SS=21 identifies this service.
// Module ranges:
//   01: identity verification
//   02: plan / pricing input
//   03: transaction ledger
//   04: payment gateway
//   05: configuration

// Identity module (210100-210199)
const (
	// ErrCodeUnauthenticated bearer token missing, rejected, or resolved to no user
	ErrCodeUnauthenticated = 210101
	// ErrCodeIdentityUnavailable identity provider unreachable or answering 5xx
	ErrCodeIdentityUnavailable = 210102
)

// Plan module (210200-210299)
const (
	// ErrCodeInvalidPlan request body carried no recognizable plan
	ErrCodeInvalidPlan = 210201
)

// Ledger module (210300-210399)
const (
	// ErrCodeLedgerWriteFailed pending transaction row could not be persisted
	ErrCodeLedgerWriteFailed = 210301
	// ErrCodeDuplicateOrder order id collided with an existing transaction
	ErrCodeDuplicateOrder = 210302
)

// Gateway module (210400-210499)
const (
	// ErrCodeGatewayRejected gateway answered with a non-success status
	ErrCodeGatewayRejected = 210401
	// ErrCodeGatewayUnavailable gateway unreachable or timed out
	ErrCodeGatewayUnavailable = 210402
)

// Configuration module (210500-210599)
const (
	// ErrCodeConfigInvalid bootstrap configuration failed validation
	ErrCodeConfigInvalid = 210501
)
