package model

// Profile is the user profile row, keyed by the identity provider's user id.
// Checkout only cares about the display name column.
type Profile struct {
	ID   string `gorm:"primaryKey;column:id"`
	Nama string `gorm:"column:nama"`
}

func (Profile) TableName() string { return "profiles" }
