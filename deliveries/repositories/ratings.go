package repositories

import "quickdeliver/deliveries/models"

func (s *store) AllRatings() ([]models.Rating, error) {
	var ratings []models.Rating
	err := s.db.Order("created_at DESC").Find(&ratings).Error
	return ratings, err
}

func (s *store) RatingsByRater(name string) ([]models.Rating, error) {
	var ratings []models.Rating
	err := s.db.Where("rater_name = ?", name).
		Order("created_at DESC").
		Find(&ratings).Error
	return ratings, err
}

func (s *store) CreateRating(rating *models.Rating) error {
	return s.db.Create(rating).Error
}

// ResolveTarget checks that a typed rating reference points at an existing
// record, one lookup per variant.
func (s *store) ResolveTarget(targetType models.TargetType, id uint) (bool, error) {
	switch targetType {
	case models.TargetCourier:
		return s.exists(&models.Courier{}, id)
	case models.TargetOrder:
		return s.exists(&models.Order{}, id)
	case models.TargetCustomer:
		return s.exists(&models.Customer{}, id)
	case models.TargetMerchant:
		return s.exists(&models.Merchant{}, id)
	}
	return false, nil
}
