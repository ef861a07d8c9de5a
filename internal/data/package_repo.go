package data

import (
	"context"
	"errors"

	"github.com/go-kratos/kratos/v2/log"
	"gorm.io/gorm"

	"github.com/paras-gg/belajarbareng-fin/internal/biz"
	"github.com/paras-gg/belajarbareng-fin/internal/data/model"
)

// premiumPackageRepo reads the pricing catalogue.
type premiumPackageRepo struct {
	data *Data
	log  *log.Helper
}

// NewPremiumPackageRepo creates the premium package repository.
func NewPremiumPackageRepo(data *Data, logger log.Logger) biz.PremiumPackageRepo {
	return &premiumPackageRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

// FindActiveByDuration returns the preferred active package for the given
// duration: popular packages first, then the most recently created. A
// missing row is not an error; pricing has a fallback for that.
func (r *premiumPackageRepo) FindActiveByDuration(ctx context.Context, months int) (*biz.PremiumPackage, error) {
	var m model.PremiumPackage
	err := r.data.db.WithContext(ctx).
		Where("is_active = ? AND duration_months = ?", true, months).
		Order("is_popular DESC, created_at DESC").
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Errorf("failed to query premium packages for %d months: %v", months, err)
		return nil, err
	}

	return &biz.PremiumPackage{
		ID:             m.ID,
		Name:           m.Name,
		Price:          m.Price,
		DurationMonths: m.DurationMonths,
		IsActive:       m.IsActive,
		IsPopular:      m.IsPopular,
		CreatedAt:      m.CreatedAt,
	}, nil
}
