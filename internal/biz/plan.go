package biz

import (
	"github.com/paras-gg/belajarbareng-fin/internal/constants"
	svcerrors "github.com/paras-gg/belajarbareng-fin/internal/errors"
)

// Plan is a premium subscription tier. Exactly two exist; any other value in
// a request is a client error, never coerced to a default.
type Plan string

const (
	PlanMonthly Plan = "monthly"
	PlanYearly  Plan = "yearly"
)

// ParsePlan maps the wire-format plan name onto a Plan. The match is exact:
// the public contract names two values and nothing else.
func ParsePlan(s string) (Plan, error) {
	switch Plan(s) {
	case PlanMonthly:
		return PlanMonthly, nil
	case PlanYearly:
		return PlanYearly, nil
	default:
		return "", svcerrors.InvalidPlan("unknown plan %q", s)
	}
}

// DurationMonths returns the plan's canonical duration, the key used to look
// up catalogue pricing.
func (p Plan) DurationMonths() int {
	if p == PlanYearly {
		return constants.YearlyDurationMonths
	}
	return constants.MonthlyDurationMonths
}

func (p Plan) String() string { return string(p) }
