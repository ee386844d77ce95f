package models

import (
	"time"

	"gorm.io/gorm"
)

type VehicleType string

const (
	VehicleMotorcycle VehicleType = "moto"
	VehicleBicycle    VehicleType = "bicicleta"
	VehicleCar        VehicleType = "carro"
)

func (t VehicleType) String() string {
	return string(t)
}

func (t VehicleType) Valid() bool {
	switch t {
	case VehicleMotorcycle, VehicleBicycle, VehicleCar:
		return true
	}
	return false
}

// RequiresPlate reports whether a courier on this vehicle must carry a plate.
func (t VehicleType) RequiresPlate() bool {
	return t == VehicleMotorcycle || t == VehicleCar
}

type Courier struct {
	ID        uint        `gorm:"primaryKey;autoIncrement"`
	Name      string      `gorm:"size:100;not null" form:"nome"`
	Vehicle   VehicleType `gorm:"size:20;not null" form:"veiculo"`
	Plate     string      `gorm:"size:10" form:"placa"`
	Available bool        `gorm:"not null" form:"disponibilidade"`
	// GPS coordinates, e.g. "-23.5505, -46.6333"
	CurrentLocation string `gorm:"size:100" form:"localizacao_atual"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Orders []Order `gorm:"foreignKey:CourierID;constraint:OnDelete:SET NULL"`
}

func (c *Courier) Validate() error {
	if !c.Vehicle.Valid() {
		return NewFieldError("veiculo", "Veículo inválido.")
	}
	if c.Plate != "" && !isAlphanumeric(c.Plate) {
		return NewFieldError("placa", "A placa deve conter apenas letras e números.")
	}
	if c.Vehicle.RequiresPlate() && c.Plate == "" {
		return NewFieldError("placa", "Placa é obrigatória para entregadores de "+c.Vehicle.String()+".")
	}
	if c.Vehicle == VehicleBicycle && c.Plate != "" {
		return NewFieldError("placa", "Placa não deve ser informada para entregadores de bicicleta.")
	}
	return nil
}

func (c *Courier) BeforeSave(*gorm.DB) error {
	return c.Validate()
}
