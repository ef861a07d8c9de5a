package data

import (
	"context"
	"errors"

	"github.com/go-kratos/kratos/v2/log"
	"gorm.io/gorm"

	"github.com/paras-gg/belajarbareng-fin/internal/biz"
	"github.com/paras-gg/belajarbareng-fin/internal/data/model"
)

// profileRepo reads user display profiles.
type profileRepo struct {
	data *Data
	log  *log.Helper
}

// NewProfileRepo creates the profile repository.
func NewProfileRepo(data *Data, logger log.Logger) biz.ProfileRepo {
	return &profileRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

// GetName returns the user's profile display name, or an empty string when
// the user has no profile row.
func (r *profileRepo) GetName(ctx context.Context, userID string) (string, error) {
	var m model.Profile
	err := r.data.db.WithContext(ctx).Select("nama").First(&m, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		r.log.Warnf("failed to read profile for user %s: %v", userID, err)
		return "", err
	}
	return m.Nama, nil
}
