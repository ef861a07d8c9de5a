package biz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	svcerrors "github.com/paras-gg/belajarbareng-fin/internal/errors"
)

func TestParsePlan(t *testing.T) {
	tests := []struct {
		in     string
		want   Plan
		wantOK bool
	}{
		{"monthly", PlanMonthly, true},
		{"yearly", PlanYearly, true},
		{"", "", false},
		{"Monthly", "", false},
		{"YEARLY", "", false},
		{"weekly", "", false},
		{"monthly ", "", false},
	}
	for _, tt := range tests {
		t.Run("in="+tt.in, func(t *testing.T) {
			got, err := ParsePlan(tt.in)
			if !tt.wantOK {
				require.Error(t, err)
				assert.True(t, svcerrors.IsInvalidInput(err), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlanDurationMonths(t *testing.T) {
	assert.Equal(t, 1, PlanMonthly.DurationMonths())
	assert.Equal(t, 12, PlanYearly.DurationMonths())
}
