package dto

import "github.com/shopspring/decimal"

// SerieQuantidade is a label/value series of unit counts for charting.
type SerieQuantidade struct {
	Labels  []string `json:"labels"`
	Valores []int    `json:"valores"`
}

// SerieValor is a label/value series of monetary amounts for charting.
type SerieValor struct {
	Labels  []string          `json:"labels"`
	Valores []decimal.Decimal `json:"valores"`
}

type RelatorioResponse struct {
	TotalFaturamento   decimal.Decimal `json:"total_faturamento"`
	TotalItensVendidos int             `json:"total_itens_vendidos"`
	ValorEstoqueCusto  decimal.Decimal `json:"valor_estoque_custo"`
	ValorEstoqueVenda  decimal.Decimal `json:"valor_estoque_venda"`
	LucroEstimado      decimal.Decimal `json:"lucro_estimado"`

	VendasPorProduto  SerieQuantidade `json:"vendas_por_produto"`
	FaturamentoDiario SerieValor      `json:"faturamento_diario"`

	EstoqueBaixo []ProdutoResponse `json:"estoque_baixo"`
}
