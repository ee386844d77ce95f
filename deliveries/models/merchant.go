package models

type Merchant struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	StoreName string `gorm:"size:100;not null" form:"nome_loja"`
	TaxID     string `gorm:"size:18;not null;unique" form:"cnpj"`
	Phone     string `gorm:"size:15" form:"telefone"`
	Address   string `gorm:"size:255" form:"endereco_loja"`
	Category  string `gorm:"size:50" form:"categoria"`

	Products []Product `gorm:"foreignKey:MerchantID;constraint:OnDelete:CASCADE"`
}

func (m *Merchant) String() string {
	return m.StoreName
}
