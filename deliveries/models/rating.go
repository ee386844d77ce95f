package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"
)

// RatingCategory says what kind of thing a rating is about.
type RatingCategory string

const (
	CategoryCourier  RatingCategory = "entregador"
	CategoryOrder    RatingCategory = "pedido"
	CategoryCustomer RatingCategory = "cliente"
	CategoryService  RatingCategory = "servico"
	CategoryMerchant RatingCategory = "estabelecimento"
)

func (c RatingCategory) Valid() bool {
	switch c {
	case CategoryCourier, CategoryOrder, CategoryCustomer, CategoryService, CategoryMerchant:
		return true
	}
	return false
}

func (c RatingCategory) Label() string {
	switch c {
	case CategoryCourier:
		return "Entregador"
	case CategoryOrder:
		return "Pedido"
	case CategoryCustomer:
		return "Cliente"
	case CategoryService:
		return "Serviço Geral"
	case CategoryMerchant:
		return "Estabelecimento"
	}
	return string(c)
}

// Categories lists all valid rating categories in display order.
func Categories() []RatingCategory {
	return []RatingCategory{
		CategoryCourier,
		CategoryOrder,
		CategoryCustomer,
		CategoryService,
		CategoryMerchant,
	}
}

// TargetType is the closed set of entity kinds a rating can point at.
// Together with TargetID it forms a typed reference resolved by the
// repository, one lookup per variant.
type TargetType string

const (
	TargetCourier  TargetType = "entregador"
	TargetOrder    TargetType = "pedido"
	TargetCustomer TargetType = "cliente"
	TargetMerchant TargetType = "estabelecimento"
)

func (t TargetType) Valid() bool {
	switch t {
	case TargetCourier, TargetOrder, TargetCustomer, TargetMerchant:
		return true
	}
	return false
}

// TargetTypeFor maps a rating category to the entity kind it references.
// CategoryService rates the service as a whole and has no target.
func TargetTypeFor(c RatingCategory) (TargetType, bool) {
	switch c {
	case CategoryCourier:
		return TargetCourier, true
	case CategoryOrder:
		return TargetOrder, true
	case CategoryCustomer:
		return TargetCustomer, true
	case CategoryMerchant:
		return TargetMerchant, true
	}
	return "", false
}

type Rating struct {
	ID         uint       `gorm:"primaryKey;autoIncrement"`
	TargetType TargetType `gorm:"size:20;index:idx_ratings_target,priority:1"`
	TargetID   uint       `gorm:"index:idx_ratings_target,priority:2"`
	// Username of whoever submitted the rating; empty for seeded data.
	RaterName string         `gorm:"size:150"`
	Category  RatingCategory `gorm:"size:20;not null" form:"tipo"`
	Score     int            `gorm:"not null" form:"nota"`
	Comment   string         `gorm:"size:500" form:"comentario"`
	Anonymous bool           `form:"anonimo"`
	CreatedAt time.Time      `gorm:"index"`
}

func (r *Rating) Validate() error {
	if !r.Category.Valid() {
		return NewFieldError("tipo", "Tipo de avaliação inválido.")
	}
	if r.Score < 1 || r.Score > 5 {
		return NewFieldError("nota", "A nota deve estar entre 1 e 5.")
	}
	if utf8.RuneCountInString(r.Comment) > 500 {
		return NewFieldError("comentario", "O comentário deve ter no máximo 500 caracteres.")
	}
	if r.TargetType != "" && !r.TargetType.Valid() {
		return NewFieldError("alvo_tipo", "Alvo da avaliação inválido.")
	}
	return nil
}

func (r *Rating) BeforeSave(*gorm.DB) error {
	return r.Validate()
}

// DisplayName is the rater shown on listings, honoring anonymity.
func (r *Rating) DisplayName() string {
	if r.Anonymous || r.RaterName == "" {
		return "Anônimo"
	}
	return r.RaterName
}

func (r *Rating) Stars() string {
	if r.Score < 1 {
		return ""
	}
	return strings.Repeat("⭐", r.Score)
}
