package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourierPlateRequiredForMotorizedVehicles(t *testing.T) {
	tests := []struct {
		name    string
		courier Courier
		wantErr bool
	}{
		{"motorcycle with plate", Courier{Name: "Carlos", Vehicle: VehicleMotorcycle, Plate: "MOT1234"}, false},
		{"car with plate", Courier{Name: "Paula", Vehicle: VehicleCar, Plate: "CAR5678"}, false},
		{"bicycle without plate", Courier{Name: "Ricardo", Vehicle: VehicleBicycle}, false},
		{"motorcycle without plate", Courier{Name: "Carlos", Vehicle: VehicleMotorcycle}, true},
		{"car without plate", Courier{Name: "Paula", Vehicle: VehicleCar}, true},
		{"bicycle with plate", Courier{Name: "Ricardo", Vehicle: VehicleBicycle, Plate: "BIC0001"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.courier.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCourierPlateMustBeAlphanumeric(t *testing.T) {
	courier := Courier{Name: "Carlos", Vehicle: VehicleMotorcycle, Plate: "MOT-1234"}
	err := courier.Validate()
	require.Error(t, err)

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "placa")
}

func TestCourierUnknownVehicleRejected(t *testing.T) {
	courier := Courier{Name: "X", Vehicle: "patinete"}
	assert.Error(t, courier.Validate())
}
