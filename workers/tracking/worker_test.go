package tracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"quickdeliver/deliveries/models"
)

func setupWorker(t *testing.T) (*Worker, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.EnsureSchema(db))
	return NewWorker(zap.NewNop(), db), db
}

func seedTracking(t *testing.T, db *gorm.DB, status models.OrderStatus, estimate, elapsed time.Duration) models.OrderTracking {
	t.Helper()
	customer := models.Customer{
		Name:    "Ana Costa",
		Phone:   "11988887777",
		Email:   "ana@email.com",
		Address: "Rua Augusta, 500",
	}
	require.NoError(t, db.Create(&customer).Error)

	order := models.Order{
		CustomerID:      customer.ID,
		DeliveryAddress: "Rua Oscar Freire, 300",
		Status:          status,
		Products: models.ProductList{
			{Name: "Marmita", Quantity: 1, Price: 25.00},
		},
	}
	order.CalculateTotal()
	require.NoError(t, db.Create(&order).Error)

	tracking := models.OrderTracking{
		OrderID:         order.ID,
		CurrentLocation: "Centro de distribuição",
		EstimatedTime:   estimate,
	}
	require.NoError(t, db.Create(&tracking).Error)

	// Backdate the gorm-managed timestamp to simulate elapsed time.
	require.NoError(t, db.Model(&tracking).
		UpdateColumn("updated_at", time.Now().Add(-elapsed)).Error)
	return tracking
}

func TestExecuteReducesEstimateByElapsedTime(t *testing.T) {
	worker, db := setupWorker(t)
	tracking := seedTracking(t, db, models.StatusEnRoute, 30*time.Minute, 10*time.Minute)

	worker.Execute()

	var got models.OrderTracking
	require.NoError(t, db.First(&got, tracking.ID).Error)
	assert.InDelta(t, float64(20*time.Minute), float64(got.EstimatedTime), float64(time.Minute))
	assert.True(t, worker.Ready(time.Now()), "worker must be ready again after a run")
}

func TestExecuteClampsEstimateAtZero(t *testing.T) {
	worker, db := setupWorker(t)
	tracking := seedTracking(t, db, models.StatusEnRoute, 30*time.Minute, 2*time.Hour)

	worker.Execute()

	var got models.OrderTracking
	require.NoError(t, db.First(&got, tracking.ID).Error)
	assert.Equal(t, time.Duration(0), got.EstimatedTime)
}

func TestExecuteSkipsOrdersNotEnRoute(t *testing.T) {
	worker, db := setupWorker(t)
	tracking := seedTracking(t, db, models.StatusDelivered, 30*time.Minute, 10*time.Minute)

	worker.Execute()

	var got models.OrderTracking
	require.NoError(t, db.First(&got, tracking.ID).Error)
	assert.Equal(t, 30*time.Minute, got.EstimatedTime)
}

func TestExecuteDoesNotOverlap(t *testing.T) {
	worker, _ := setupWorker(t)

	worker.busy.Store(true)
	assert.False(t, worker.Ready(time.Now()))
	worker.Execute() // returns immediately, leaving the flag set
	assert.False(t, worker.Ready(time.Now()))

	worker.busy.Store(false)
	assert.True(t, worker.Ready(time.Now()))
}
