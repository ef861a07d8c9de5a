package biz

import (
	"context"
	"time"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/paras-gg/belajarbareng-fin/internal/constants"
)

// PremiumPackage is one row of the premium_packages catalogue. Price is in
// whole rupiah.
type PremiumPackage struct {
	ID             int64
	Name           string
	Price          int64
	DurationMonths int
	IsActive       bool
	IsPopular      bool
	CreatedAt      time.Time
}

// PremiumPackageRepo reads the pricing catalogue.
type PremiumPackageRepo interface {
	// FindActiveByDuration returns the preferred active package for the given
	// duration: popular packages first, then newest. Nil without error when
	// none exists.
	FindActiveByDuration(ctx context.Context, months int) (*PremiumPackage, error)
}

// PriceQuote is what a checkout will charge: an amount in whole rupiah and
// the item name shown on the gateway's payment page. Fallback records that
// the fixed default table supplied it rather than the catalogue.
type PriceQuote struct {
	Amount   int64
	ItemName string
	Fallback bool
}

// PricingResolver turns a plan into a usable quote. It never fails: when the
// catalogue has no usable row, or cannot be queried at all, the fixed default
// table answers instead. Checkout must not break just because promotional
// pricing data is unavailable.
type PricingResolver struct {
	repo PremiumPackageRepo
	log  *log.Helper
}

func NewPricingResolver(repo PremiumPackageRepo, logger log.Logger) *PricingResolver {
	return &PricingResolver{
		repo: repo,
		log:  log.NewHelper(logger),
	}
}

// Resolve prices the plan. A catalogue row wins only when it carries a
// positive amount and a non-empty name; anything less falls back, so the
// returned quote is always chargeable. Quotes are recomputed per request,
// never cached.
func (r *PricingResolver) Resolve(ctx context.Context, plan Plan) PriceQuote {
	pkg, err := r.repo.FindActiveByDuration(ctx, plan.DurationMonths())
	if err != nil {
		r.log.Warnf("premium package lookup failed, using fallback price: plan=%s err=%v", plan, err)
		return fallbackQuote(plan)
	}
	if pkg == nil || pkg.Price <= 0 || pkg.Name == "" {
		r.log.Infof("no usable premium package for plan %s, using fallback price", plan)
		return fallbackQuote(plan)
	}
	return PriceQuote{Amount: pkg.Price, ItemName: pkg.Name}
}

func fallbackQuote(plan Plan) PriceQuote {
	if plan == PlanYearly {
		return PriceQuote{
			Amount:   constants.FallbackYearlyAmount,
			ItemName: constants.FallbackYearlyName,
			Fallback: true,
		}
	}
	return PriceQuote{
		Amount:   constants.FallbackMonthlyAmount,
		ItemName: constants.FallbackMonthlyName,
		Fallback: true,
	}
}
