package repositories

import "quickdeliver/deliveries/models"

func (s *store) ListOrders() ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Customer").Preload("Courier").
		Order("placed_at DESC").
		Find(&orders).Error
	return orders, err
}

func (s *store) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Customer").Preload("Courier").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *store) CreateOrder(order *models.Order) error {
	return s.db.Create(order).Error
}
