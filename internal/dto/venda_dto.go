package dto

import "github.com/shopspring/decimal"

// RegistrarVendaRequest mirrors the sale form: product and quantity are
// required, customer is optional (blank = walk-in sale).
type RegistrarVendaRequest struct {
	ProdutoID  string `form:"produto_id" json:"produto_id" validate:"required"`
	ClienteID  string `form:"cliente_id" json:"cliente_id"`
	Quantidade string `form:"quantidade" json:"quantidade" validate:"required"`
}

type VendaResponse struct {
	ID         uint            `json:"id"`
	Data       string          `json:"data"`
	Produto    string          `json:"produto"`
	Cliente    string          `json:"cliente"`
	Quantidade int             `json:"quantidade"`
	ValorTotal decimal.Decimal `json:"valor_total"`
}

// NovaVendaModel is the rendering model for the sale form: the product and
// customer lists the form selects from.
type NovaVendaModel struct {
	Produtos []ProdutoResponse `json:"produtos"`
	Clientes []ClienteResponse `json:"clientes"`
}
