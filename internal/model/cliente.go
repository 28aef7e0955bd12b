package model

// Cliente is a registered customer. All secondary fields are optional; a sale
// without a customer is a walk-in sale.
type Cliente struct {
	ID       uint    `gorm:"primaryKey"`
	Nome     string  `gorm:"not null"`
	Telefone *string `gorm:"type:varchar(20)"`
	Email    *string `gorm:"type:varchar(100)"`
	Cidade   *string `gorm:"type:varchar(50)"`
}

func (Cliente) TableName() string { return "clientes" }
