package repositories

import (
	"gorm.io/gorm"

	"quickdeliver/deliveries/models"
)

func (s *store) ListMerchants() ([]models.Merchant, error) {
	var merchants []models.Merchant
	err := s.db.Order("store_name").Find(&merchants).Error
	return merchants, err
}

func (s *store) GetMerchant(id uint) (*models.Merchant, error) {
	var merchant models.Merchant
	if err := s.db.Preload("Products").First(&merchant, id).Error; err != nil {
		return nil, err
	}
	return &merchant, nil
}

func (s *store) CreateMerchant(merchant *models.Merchant) error {
	return s.db.Create(merchant).Error
}

// DeleteMerchant removes the merchant and cascades to its products.
func (s *store) DeleteMerchant(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("merchant_id = ?", id).Delete(&models.Product{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Merchant{}, id).Error
	})
}

func (s *store) MerchantProducts(merchantID uint) ([]models.Product, error) {
	var products []models.Product
	err := s.db.Where("merchant_id = ?", merchantID).Order("name").Find(&products).Error
	return products, err
}

func (s *store) CreateProduct(product *models.Product) error {
	return s.db.Create(product).Error
}
