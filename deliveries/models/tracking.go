package models

import "time"

// OrderTracking carries the live position and remaining-time estimate for an
// order. One order may accumulate several tracking rows over its lifetime.
type OrderTracking struct {
	ID              uint   `gorm:"primaryKey;autoIncrement"`
	OrderID         uint   `gorm:"not null;index"`
	Order           *Order `gorm:"constraint:OnDelete:CASCADE"`
	CurrentLocation string `gorm:"size:255"`
	EstimatedTime   time.Duration
	UpdatedAt       time.Time
}
