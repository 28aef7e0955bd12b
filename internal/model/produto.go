package model

import "github.com/shopspring/decimal"

// Produto is a stock item. Nome is not unique at the schema level but the CSV
// import treats it as the natural key (exact match adds to quantity instead of
// creating a duplicate row).
type Produto struct {
	ID         uint            `gorm:"primaryKey"`
	Nome       string          `gorm:"index;not null"`
	Quantidade int             `gorm:"not null"`
	Preco      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	// PrecoCompra is the optional purchase cost; nil when never informed.
	PrecoCompra *decimal.Decimal `gorm:"type:decimal(12,2)"`
	// Validade is a free-text expiry label ("12/2026", "sem validade", …).
	Validade *string `gorm:"type:varchar(20)"`
}

func (Produto) TableName() string { return "produtos" }
