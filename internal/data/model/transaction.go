package model

import "time"

// Transaction is one payment ledger row. midtrans_order_id carries a unique
// index: it is the identifier the gateway sees, and no two rows may ever
// share one.
type Transaction struct {
	ID              string    `gorm:"primaryKey;column:id"`
	UserID          string    `gorm:"column:user_id;index:idx_transactions_user_id"`
	Paket           string    `gorm:"column:paket"`
	Amount          int64     `gorm:"column:amount"`
	MidtransOrderID string    `gorm:"column:midtrans_order_id;uniqueIndex:idx_transactions_order_id"`
	Status          string    `gorm:"column:status"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Transaction) TableName() string { return "transactions" }
