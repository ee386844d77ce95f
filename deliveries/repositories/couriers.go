package repositories

import (
	"gorm.io/gorm"

	"quickdeliver/deliveries/models"
)

func (s *store) ListCouriers() ([]models.Courier, error) {
	var couriers []models.Courier
	err := s.db.Order("name").Find(&couriers).Error
	return couriers, err
}

func (s *store) GetCourier(id uint) (*models.Courier, error) {
	var courier models.Courier
	if err := s.db.First(&courier, id).Error; err != nil {
		return nil, err
	}
	return &courier, nil
}

func (s *store) CourierOrders(courierID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Customer").
		Where("courier_id = ?", courierID).
		Order("placed_at DESC").
		Find(&orders).Error
	return orders, err
}

func (s *store) CreateCourier(courier *models.Courier) error {
	return s.db.Create(courier).Error
}

// DeleteCourier clears the courier reference on affected orders instead of
// deleting them, then removes the courier.
func (s *store) DeleteCourier(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Order{}).
			Where("courier_id = ?", id).
			Update("courier_id", nil).Error
		if err != nil {
			return err
		}
		return tx.Delete(&models.Courier{}, id).Error
	})
}
