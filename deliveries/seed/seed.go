// Package seed populates the store with fixed sample data for manual
// testing. Re-running it is safe: records are looked up by natural key
// before being created.
package seed

import (
	"time"

	"gorm.io/gorm"

	"quickdeliver/deliveries/models"
)

type Config struct {
	Merchants bool
	Ratings   bool
}

type Summary struct {
	Customers int
	Couriers  int
	Orders    int
	Merchants int
	Products  int
	Trackings int
	Ratings   int
}

func Run(db *gorm.DB, cfg Config) (*Summary, error) {
	summary := &Summary{}

	customers, err := seedCustomers(db, summary)
	if err != nil {
		return nil, err
	}
	couriers, err := seedCouriers(db, summary)
	if err != nil {
		return nil, err
	}
	orders, err := seedOrders(db, customers, couriers, summary)
	if err != nil {
		return nil, err
	}
	if err := seedTrackings(db, orders, summary); err != nil {
		return nil, err
	}

	if cfg.Merchants {
		if err := seedMerchants(db, summary); err != nil {
			return nil, err
		}
	}
	if cfg.Ratings {
		if err := seedRatings(db, couriers, orders, summary); err != nil {
			return nil, err
		}
	}

	return summary, nil
}

func seedCustomers(db *gorm.DB, summary *Summary) ([]models.Customer, error) {
	samples := []models.Customer{
		{Name: "Maria Silva", Phone: "11999999999", Email: "maria@email.com", Address: "Rua das Flores, 123"},
		{Name: "João Santos", Phone: "11988888888", Email: "joao@email.com", Address: "Av. Paulista, 1000"},
		{Name: "Ana Costa", Phone: "11977777777", Email: "ana@email.com", Address: "Rua Augusta, 500"},
	}

	customers := make([]models.Customer, 0, len(samples))
	for _, sample := range samples {
		var customer models.Customer
		res := db.Where(models.Customer{Email: sample.Email}).
			Attrs(sample).
			FirstOrCreate(&customer)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected > 0 {
			summary.Customers++
		}
		customers = append(customers, customer)
	}
	return customers, nil
}

func seedCouriers(db *gorm.DB, summary *Summary) ([]models.Courier, error) {
	samples := []models.Courier{
		{Name: "Carlos Motoboy", Vehicle: models.VehicleMotorcycle, Plate: "MOT1234", Available: true},
		{Name: "Paula Entregadora", Vehicle: models.VehicleCar, Plate: "CAR5678", Available: true},
		{Name: "Ricardo Express", Vehicle: models.VehicleBicycle, Available: false},
	}

	couriers := make([]models.Courier, 0, len(samples))
	for _, sample := range samples {
		var courier models.Courier
		res := db.Where(models.Courier{Name: sample.Name}).
			Attrs(sample).
			FirstOrCreate(&courier)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected > 0 {
			summary.Couriers++
		}
		couriers = append(couriers, courier)
	}
	return couriers, nil
}

func seedOrders(db *gorm.DB, customers []models.Customer, couriers []models.Courier, summary *Summary) ([]models.Order, error) {
	samples := []models.Order{
		{Status: models.StatusEnRoute, Priority: models.PriorityNormal, Products: models.ProductList{
			{Name: "Remédio Dor", Quantity: 2, Price: 15.90},
		}},
		{Status: models.StatusDelivered, Priority: models.PriorityNormal, Products: models.ProductList{
			{Name: "Shampoo", Quantity: 1, Price: 22.90},
		}},
		{Status: models.StatusPreparing, Priority: models.PriorityUrgent, Products: models.ProductList{
			{Name: "Produto Urgente", Quantity: 1, Price: 50.00},
		}},
	}

	var orders []models.Order
	for _, customer := range customers {
		var existing int64
		err := db.Model(&models.Order{}).
			Where("customer_id = ?", customer.ID).
			Count(&existing).Error
		if err != nil {
			return nil, err
		}
		if existing > 0 {
			var current []models.Order
			if err := db.Where("customer_id = ?", customer.ID).Find(&current).Error; err != nil {
				return nil, err
			}
			orders = append(orders, current...)
			continue
		}

		for j, sample := range samples {
			courierID := couriers[j%len(couriers)].ID
			order := models.Order{
				CustomerID:      customer.ID,
				CourierID:       &courierID,
				DeliveryAddress: customer.Address,
				Status:          sample.Status,
				Priority:        sample.Priority,
				Products:        sample.Products,
			}
			order.CalculateTotal()
			if err := db.Create(&order).Error; err != nil {
				return nil, err
			}
			summary.Orders++
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func seedTrackings(db *gorm.DB, orders []models.Order, summary *Summary) error {
	for _, order := range orders {
		if order.Status != models.StatusEnRoute {
			continue
		}
		var existing int64
		err := db.Model(&models.OrderTracking{}).
			Where("order_id = ?", order.ID).
			Count(&existing).Error
		if err != nil {
			return err
		}
		if existing > 0 {
			continue
		}
		tracking := models.OrderTracking{
			OrderID:         order.ID,
			CurrentLocation: "-23.5505, -46.6333",
			EstimatedTime:   35 * time.Minute,
		}
		if err := db.Create(&tracking).Error; err != nil {
			return err
		}
		summary.Trackings++
	}
	return nil
}

func seedMerchants(db *gorm.DB, summary *Summary) error {
	samples := []struct {
		merchant models.Merchant
		products []models.Product
	}{
		{
			merchant: models.Merchant{
				StoreName: "Farmácia Central",
				TaxID:     "12.345.678/0001-90",
				Phone:     "1133334444",
				Address:   "Rua da Saúde, 45",
				Category:  "farmácia",
			},
			products: []models.Product{
				{Name: "Remédio Dor", Description: "Analgésico comum", Price: 15.90, Category: "saúde"},
				{Name: "Shampoo", Description: "Frasco 350ml", Price: 22.90, Category: "higiene"},
			},
		},
		{
			merchant: models.Merchant{
				StoreName: "Mercado do Bairro",
				TaxID:     "98.765.432/0001-10",
				Phone:     "1155556666",
				Address:   "Av. Principal, 800",
				Category:  "mercado",
			},
			products: []models.Product{
				{Name: "Café Torrado", Description: "Pacote 500g", Price: 18.50, Category: "alimentos"},
			},
		},
	}

	for _, sample := range samples {
		var merchant models.Merchant
		res := db.Where(models.Merchant{TaxID: sample.merchant.TaxID}).
			Attrs(sample.merchant).
			FirstOrCreate(&merchant)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			continue
		}
		summary.Merchants++

		for _, product := range sample.products {
			product.MerchantID = merchant.ID
			if err := db.Create(&product).Error; err != nil {
				return err
			}
			summary.Products++
		}
	}
	return nil
}

func seedRatings(db *gorm.DB, couriers []models.Courier, orders []models.Order, summary *Summary) error {
	var existing int64
	if err := db.Model(&models.Rating{}).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 || len(couriers) == 0 || len(orders) == 0 {
		return nil
	}

	samples := []models.Rating{
		{
			TargetType: models.TargetCourier,
			TargetID:   couriers[0].ID,
			Category:   models.CategoryCourier,
			Score:      5,
			Comment:    "Entrega rápida e atencioso.",
			RaterName:  "admin",
		},
		{
			TargetType: models.TargetOrder,
			TargetID:   orders[0].ID,
			Category:   models.CategoryOrder,
			Score:      4,
			Comment:    "Chegou dentro do prazo.",
			RaterName:  "admin",
		},
		{
			Category:  models.CategoryService,
			Score:     3,
			Comment:   "Serviço razoável.",
			Anonymous: true,
		},
	}

	for _, rating := range samples {
		if err := db.Create(&rating).Error; err != nil {
			return err
		}
		summary.Ratings++
	}
	return nil
}
