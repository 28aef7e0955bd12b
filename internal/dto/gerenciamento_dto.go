package dto

// GerenciamentoModel is the rendering model for the management page.
type GerenciamentoModel struct {
	TotalProdutos int64 `json:"total_produtos"`
	TotalClientes int64 `json:"total_clientes"`
	TotalVendas   int64 `json:"total_vendas"`
}

// ImportacaoResponse aggregates the per-row outcomes of a CSV import.
// Rows that fail to parse are counted, never surfaced individually.
type ImportacaoResponse struct {
	Criados     int `json:"criados"`
	Atualizados int `json:"atualizados"`
	Ignorados   int `json:"ignorados"`
}
