package model

import "time"

// PremiumPackage is one row of the pricing catalogue. The content team
// manages these rows in the hosted database; this service only reads them.
type PremiumPackage struct {
	ID             int64     `gorm:"primaryKey;column:id"`
	Name           string    `gorm:"column:name"`
	Price          int64     `gorm:"column:price"` // whole rupiah
	DurationMonths int       `gorm:"column:duration_months"`
	IsActive       bool      `gorm:"column:is_active"`
	IsPopular      bool      `gorm:"column:is_popular"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (PremiumPackage) TableName() string { return "premium_packages" }
