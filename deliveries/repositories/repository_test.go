package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"quickdeliver/deliveries/models"
	"quickdeliver/deliveries/repositories"
)

func setupStore(t *testing.T) (repositories.Store, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.EnsureSchema(db))
	return repositories.NewStore(db), db
}

func createCustomer(t *testing.T, store repositories.Store) models.Customer {
	t.Helper()
	customer := models.Customer{
		Name:    "Maria Silva",
		Phone:   "11999999999",
		Email:   "maria@email.com",
		Address: "Rua das Flores, 123",
	}
	require.NoError(t, store.CreateCustomer(&customer))
	return customer
}

func createOrder(t *testing.T, store repositories.Store, customerID uint, courierID *uint) models.Order {
	t.Helper()
	order := models.Order{
		CustomerID:      customerID,
		CourierID:       courierID,
		DeliveryAddress: "Av. Paulista, 1000",
		Products: models.ProductList{
			{Name: "Shampoo", Quantity: 1, Price: 22.90},
		},
	}
	order.CalculateTotal()
	require.NoError(t, store.CreateOrder(&order))
	return order
}

func TestDeleteCustomerCascadesToOrders(t *testing.T) {
	store, db := setupStore(t)

	customer := createCustomer(t, store)
	createOrder(t, store, customer.ID, nil)
	createOrder(t, store, customer.ID, nil)

	require.NoError(t, store.DeleteCustomer(customer.ID))

	_, err := store.GetCustomer(customer.ID)
	assert.True(t, repositories.IsNotFound(err))

	var remaining int64
	require.NoError(t, db.Model(&models.Order{}).
		Where("customer_id = ?", customer.ID).
		Count(&remaining).Error)
	assert.Zero(t, remaining, "customer orders must be removed with the customer")
}

func TestDeleteCourierNullsOrderReference(t *testing.T) {
	store, db := setupStore(t)

	customer := createCustomer(t, store)
	courier := models.Courier{
		Name:      "Carlos Motoboy",
		Vehicle:   models.VehicleMotorcycle,
		Plate:     "MOT1234",
		Available: true,
	}
	require.NoError(t, store.CreateCourier(&courier))
	order := createOrder(t, store, customer.ID, &courier.ID)

	require.NoError(t, store.DeleteCourier(courier.ID))

	_, err := store.GetCourier(courier.ID)
	assert.True(t, repositories.IsNotFound(err))

	var got models.Order
	require.NoError(t, db.First(&got, order.ID).Error, "order must survive courier deletion")
	assert.Nil(t, got.CourierID)
}

func TestDeleteMerchantCascadesToProducts(t *testing.T) {
	store, db := setupStore(t)

	merchant := models.Merchant{StoreName: "Farmácia Central", TaxID: "12.345.678/0001-90"}
	require.NoError(t, store.CreateMerchant(&merchant))
	require.NoError(t, store.CreateProduct(&models.Product{
		Name: "Remédio Dor", Price: 15.90, MerchantID: merchant.ID,
	}))

	require.NoError(t, store.DeleteMerchant(merchant.ID))

	var remaining int64
	require.NoError(t, db.Model(&models.Product{}).
		Where("merchant_id = ?", merchant.ID).
		Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func TestResolveTarget(t *testing.T) {
	store, _ := setupStore(t)
	customer := createCustomer(t, store)

	exists, err := store.ResolveTarget(models.TargetCustomer, customer.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = store.ResolveTarget(models.TargetCourier, 999)
	require.NoError(t, err)
	assert.False(t, exists)
}
