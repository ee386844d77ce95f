package tracking

import (
	"gorm.io/gorm"

	"quickdeliver/deliveries/models"
)

type repository struct {
	db *gorm.DB
}

func newRepository(db *gorm.DB) *repository {
	return &repository{db: db}
}

// enRouteTrackings returns tracking rows whose order is currently en route.
func (r *repository) enRouteTrackings() ([]models.OrderTracking, error) {
	var trackings []models.OrderTracking
	err := r.db.
		Joins("JOIN orders ON orders.id = order_trackings.order_id").
		Where("orders.status = ?", models.StatusEnRoute).
		Find(&trackings).Error
	return trackings, err
}

func (r *repository) save(tracking *models.OrderTracking) error {
	return r.db.Save(tracking).Error
}
