package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	StatusPreparing OrderStatus = "preparando"
	StatusEnRoute   OrderStatus = "em_rota"
	StatusDelivered OrderStatus = "entregue"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPreparing, StatusEnRoute, StatusDelivered:
		return true
	}
	return false
}

func (s OrderStatus) Label() string {
	switch s {
	case StatusPreparing:
		return "Preparando"
	case StatusEnRoute:
		return "Em rota"
	case StatusDelivered:
		return "Entregue"
	}
	return string(s)
}

type OrderPriority string

const (
	PriorityNormal OrderPriority = "normal"
	PriorityUrgent OrderPriority = "urgente"
)

func (p OrderPriority) Valid() bool {
	return p == PriorityNormal || p == PriorityUrgent
}

// ProductItem is one line of an order's embedded product list.
type ProductItem struct {
	Name     string  `json:"nome"`
	Quantity int     `json:"quantidade"`
	Price    float64 `json:"preco"`
}

func (i ProductItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// ProductList stores the embedded product list as a JSON column.
type ProductList []ProductItem

func (l ProductList) Value() (driver.Value, error) {
	if l == nil {
		l = ProductList{}
	}
	return json.Marshal(l)
}

func (l *ProductList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into ProductList", value)
	}
	return json.Unmarshal(raw, l)
}

type Order struct {
	ID              uint  `gorm:"primaryKey;autoIncrement"`
	CustomerID      uint  `gorm:"not null;index"`
	Customer        *Customer
	CourierID       *uint `gorm:"index"`
	Courier         *Courier
	DeliveryAddress string        `gorm:"not null"`
	Status          OrderStatus   `gorm:"size:20;not null;default:preparando"`
	Priority        OrderPriority `gorm:"size:20;not null;default:normal"`
	Products        ProductList   `gorm:"type:json"`
	TotalValue      float64       `gorm:"not null;default:0"`
	PlacedAt        time.Time     `gorm:"autoCreateTime;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (o *Order) IsUrgent() bool {
	return o.Priority == PriorityUrgent
}

// CalculateTotal sums price×quantity over the product list and stores it.
func (o *Order) CalculateTotal() float64 {
	total := 0.0
	for _, item := range o.Products {
		total += item.Subtotal()
	}
	o.TotalValue = total
	return total
}

func (o *Order) Validate() error {
	if len(o.Products) == 0 {
		return NewFieldError("produtos", "O pedido deve conter pelo menos um produto.")
	}
	if o.Status != "" && !o.Status.Valid() {
		return NewFieldError("status", "Status inválido.")
	}
	if o.Priority != "" && !o.Priority.Valid() {
		return NewFieldError("prioridade", "Prioridade inválida.")
	}
	return nil
}

func (o *Order) BeforeSave(*gorm.DB) error {
	if o.Status == "" {
		o.Status = StatusPreparing
	}
	if o.Priority == "" {
		o.Priority = PriorityNormal
	}
	return o.Validate()
}
