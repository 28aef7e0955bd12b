package dto

import "github.com/shopspring/decimal"

// ProdutoFormRequest carries the raw textual fields of the product form.
// Numeric coercion happens in the service so create and edit share the same
// rules: a blank purchase cost is stored as NULL, never as zero.
type ProdutoFormRequest struct {
	Nome        string `form:"nome"         json:"nome"         validate:"required,max=100"`
	Quantidade  string `form:"quantidade"   json:"quantidade"   validate:"required"`
	Preco       string `form:"preco"        json:"preco"        validate:"required"`
	PrecoCompra string `form:"preco_compra" json:"preco_compra"`
	Validade    string `form:"validade"     json:"validade"`
}

type ProdutoResponse struct {
	ID          uint             `json:"id"`
	Nome        string           `json:"nome"`
	Quantidade  int              `json:"quantidade"`
	Preco       decimal.Decimal  `json:"preco"`
	PrecoCompra *decimal.Decimal `json:"preco_compra"`
	Validade    *string          `json:"validade"`
}
