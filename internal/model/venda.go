package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venda records a completed sale. ValorTotal is snapshotted at creation time
// (unit price × quantity) and is never recalculated, even if the product price
// changes later. Neither foreign key cascades: a deleted product leaves a
// dangling reference that readers resolve defensively.
type Venda struct {
	ID         uint            `gorm:"primaryKey"`
	Data       time.Time       `gorm:"not null;index"`
	Quantidade int             `gorm:"not null"`
	ValorTotal decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	ProdutoID uint  `gorm:"not null;index"`
	ClienteID *uint `gorm:"index"`

	Produto *Produto `gorm:"foreignKey:ProdutoID;constraint:OnDelete:NO ACTION"`
	Cliente *Cliente `gorm:"foreignKey:ClienteID;constraint:OnDelete:NO ACTION"`
}

func (Venda) TableName() string { return "vendas" }
