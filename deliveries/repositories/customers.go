package repositories

import (
	"gorm.io/gorm"

	"quickdeliver/deliveries/models"
)

func (s *store) ListCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	err := s.db.Order("name").Find(&customers).Error
	return customers, err
}

func (s *store) GetCustomer(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *store) CreateCustomer(customer *models.Customer) error {
	return s.db.Create(customer).Error
}

// DeleteCustomer removes the customer and cascades to their orders.
func (s *store) DeleteCustomer(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", id).Delete(&models.Order{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Customer{}, id).Error
	})
}
