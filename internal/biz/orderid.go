package biz

import (
	"fmt"
	"time"

	"github.com/paras-gg/belajarbareng-fin/internal/constants"
)

// GenerateOrderID mints the gateway order reference for one checkout attempt:
// prem-<first 8 chars of the principal id>-<unix milliseconds>. Deterministic
// in its inputs, no randomness, no external state. Uniqueness is
// probabilistic, bounded by one request per principal per millisecond; a
// collision surfaces as a duplicate-key write on the ledger and is reported,
// never retried with the same id.
func GenerateOrderID(principal *Principal, at time.Time) string {
	prefix := principal.ID
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	return fmt.Sprintf("%s-%s-%d", constants.OrderIDPrefix, prefix, at.UnixMilli())
}
