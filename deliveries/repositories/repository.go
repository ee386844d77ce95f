package repositories

import (
	"errors"

	"gorm.io/gorm"

	"quickdeliver/deliveries/models"
)

// Store is the persistence surface the handlers depend on.
type Store interface {
	ListCustomers() ([]models.Customer, error)
	GetCustomer(id uint) (*models.Customer, error)
	CreateCustomer(customer *models.Customer) error
	DeleteCustomer(id uint) error

	ListCouriers() ([]models.Courier, error)
	GetCourier(id uint) (*models.Courier, error)
	CourierOrders(courierID uint) ([]models.Order, error)
	CreateCourier(courier *models.Courier) error
	DeleteCourier(id uint) error

	ListOrders() ([]models.Order, error)
	GetOrder(id uint) (*models.Order, error)
	CreateOrder(order *models.Order) error

	ListMerchants() ([]models.Merchant, error)
	GetMerchant(id uint) (*models.Merchant, error)
	CreateMerchant(merchant *models.Merchant) error
	DeleteMerchant(id uint) error
	MerchantProducts(merchantID uint) ([]models.Product, error)
	CreateProduct(product *models.Product) error

	LatestTracking(orderID uint) (*models.OrderTracking, error)
	SaveTracking(tracking *models.OrderTracking) error

	AllRatings() ([]models.Rating, error)
	RatingsByRater(name string) ([]models.Rating, error)
	CreateRating(rating *models.Rating) error
	ResolveTarget(targetType models.TargetType, id uint) (bool, error)
}

type store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &store{db: db}
}

// IsNotFound reports whether err means the primary key did not resolve.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func (s *store) exists(model interface{}, id uint) (bool, error) {
	err := s.db.Select("id").First(model, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
