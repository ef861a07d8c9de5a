package biz

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPackageRepo struct {
	find func(ctx context.Context, months int) (*PremiumPackage, error)
}

func (s *stubPackageRepo) FindActiveByDuration(ctx context.Context, months int) (*PremiumPackage, error) {
	return s.find(ctx, months)
}

func newTestResolver(find func(ctx context.Context, months int) (*PremiumPackage, error)) *PricingResolver {
	return NewPricingResolver(&stubPackageRepo{find: find}, log.NewStdLogger(io.Discard))
}

func TestResolveCanonicalRowWins(t *testing.T) {
	var askedMonths int
	r := newTestResolver(func(_ context.Context, months int) (*PremiumPackage, error) {
		askedMonths = months
		return &PremiumPackage{
			ID:             7,
			Name:           "Annual Promo",
			Price:          350000,
			DurationMonths: months,
			IsActive:       true,
			IsPopular:      true,
			CreatedAt:      time.Now(),
		}, nil
	})

	quote := r.Resolve(context.Background(), PlanYearly)

	assert.Equal(t, 12, askedMonths)
	assert.Equal(t, int64(350000), quote.Amount)
	assert.Equal(t, "Annual Promo", quote.ItemName)
	assert.False(t, quote.Fallback)
}

func TestResolveMonthlyAsksForOneMonth(t *testing.T) {
	var askedMonths int
	r := newTestResolver(func(_ context.Context, months int) (*PremiumPackage, error) {
		askedMonths = months
		return nil, nil
	})

	r.Resolve(context.Background(), PlanMonthly)
	assert.Equal(t, 1, askedMonths)
}

func TestResolveFallsBack(t *testing.T) {
	boom := errors.New("connection refused")

	tests := []struct {
		name string
		find func(ctx context.Context, months int) (*PremiumPackage, error)
	}{
		{"store error", func(context.Context, int) (*PremiumPackage, error) { return nil, boom }},
		{"no row", func(context.Context, int) (*PremiumPackage, error) { return nil, nil }},
		{"zero price", func(context.Context, int) (*PremiumPackage, error) {
			return &PremiumPackage{Name: "Broken Promo", Price: 0}, nil
		}},
		{"negative price", func(context.Context, int) (*PremiumPackage, error) {
			return &PremiumPackage{Name: "Broken Promo", Price: -1}, nil
		}},
		{"blank name", func(context.Context, int) (*PremiumPackage, error) {
			return &PremiumPackage{Name: "", Price: 99000}, nil
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResolver(tt.find)

			monthly := r.Resolve(context.Background(), PlanMonthly)
			assert.Equal(t, int64(40000), monthly.Amount)
			assert.Equal(t, "Premium Membership 1 Bulan", monthly.ItemName)
			assert.True(t, monthly.Fallback)

			yearly := r.Resolve(context.Background(), PlanYearly)
			assert.Equal(t, int64(480000), yearly.Amount)
			assert.Equal(t, "Premium Membership 12 Bulan", yearly.ItemName)
			assert.True(t, yearly.Fallback)
		})
	}
}

// Whatever the store does, a quote must come back chargeable: positive
// amount, non-empty name, for every plan.
func TestResolveNeverFails(t *testing.T) {
	behaviors := []func(ctx context.Context, months int) (*PremiumPackage, error){
		func(context.Context, int) (*PremiumPackage, error) { return nil, errors.New("timeout") },
		func(context.Context, int) (*PremiumPackage, error) { return nil, nil },
		func(context.Context, int) (*PremiumPackage, error) { return &PremiumPackage{Price: 0, Name: "x"}, nil },
		func(context.Context, int) (*PremiumPackage, error) {
			return &PremiumPackage{Price: 125000, Name: "Promo Spesial"}, nil
		},
	}

	for _, find := range behaviors {
		r := newTestResolver(find)
		for _, plan := range []Plan{PlanMonthly, PlanYearly} {
			quote := r.Resolve(context.Background(), plan)
			require.Greater(t, quote.Amount, int64(0))
			require.NotEmpty(t, quote.ItemName)
		}
	}
}
