package repositories

import "quickdeliver/deliveries/models"

func (s *store) LatestTracking(orderID uint) (*models.OrderTracking, error) {
	var tracking models.OrderTracking
	err := s.db.Where("order_id = ?", orderID).
		Order("updated_at DESC").
		First(&tracking).Error
	if err != nil {
		return nil, err
	}
	return &tracking, nil
}

func (s *store) SaveTracking(tracking *models.OrderTracking) error {
	return s.db.Save(tracking).Error
}
