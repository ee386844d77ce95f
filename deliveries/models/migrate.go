package models

import "gorm.io/gorm"

// EnsureSchema applies the required database schema.
func EnsureSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&Customer{},
		&Courier{},
		&Order{},
		&Merchant{},
		&Product{},
		&OrderTracking{},
		&Rating{},
	)
}
