package constants

import "time"

// Transaction status values written to the transactions table. Only
// StatusPending is ever written by this service; completed/failed are set by
// the payment-confirmation callback flow, which lives outside it.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Canonical plan durations, in months.
const (
	MonthlyDurationMonths = 1
	YearlyDurationMonths  = 12
)

// Fallback price table, used when premium_packages has no active row for the
// requested duration or cannot be queried at all. Fixed deployment constants,
// not derived at runtime: checkout must not fail just because promotional
// pricing data is temporarily unavailable.
const (
	// FallbackMonthlyAmount is in whole rupiah (IDR has no minor unit on the gateway).
	FallbackMonthlyAmount int64 = 40000
	FallbackYearlyAmount  int64 = 480000

	FallbackMonthlyName = "Premium Membership 1 Bulan"
	FallbackYearlyName  = "Premium Membership 12 Bulan"
)

// OrderIDPrefix prefixes every gateway order id minted by this service.
const OrderIDPrefix = "prem"

// Default timeouts for outbound calls, overridable in configuration. Each
// external call gets its own bound so a wedged upstream cannot hold requests
// open indefinitely.
const (
	DefaultIdentityTimeout = 10 * time.Second
	DefaultGatewayTimeout  = 15 * time.Second
)
