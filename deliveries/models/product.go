package models

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"size:100;not null" form:"nome"`
	Description string  `form:"descricao"`
	Price       float64 `gorm:"not null" form:"preco"`
	Category    string  `gorm:"size:50" form:"categoria"`
	MerchantID  uint    `gorm:"not null;index"`
	Merchant    *Merchant
}

func (p *Product) String() string {
	return p.Name
}
