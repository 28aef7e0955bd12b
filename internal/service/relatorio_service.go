package service

import (
	"context"

	"estoque/internal/dto"
	"estoque/internal/repository"

	"github.com/shopspring/decimal"
)

// Products with quantity strictly below this threshold appear in the
// low-stock list.
const limiteEstoqueBaixo = 5

// RelatorioService aggregates products and sales into summary figures and two
// chart series. Everything is recomputed from a full scan on each request —
// the dataset is a single shop's inventory.
type RelatorioService interface {
	Gerar(ctx context.Context) (*dto.RelatorioResponse, error)
}

type relatorioService struct {
	produtoRepo repository.ProdutoRepository
	vendaRepo   repository.VendaRepository
}

func NewRelatorioService(produtoRepo repository.ProdutoRepository, vendaRepo repository.VendaRepository) RelatorioService {
	return &relatorioService{produtoRepo: produtoRepo, vendaRepo: vendaRepo}
}

func (s *relatorioService) Gerar(ctx context.Context) (*dto.RelatorioResponse, error) {
	produtos, err := s.produtoRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	vendas, err := s.vendaRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.RelatorioResponse{
		TotalFaturamento:  decimal.Zero,
		ValorEstoqueCusto: decimal.Zero,
		ValorEstoqueVenda: decimal.Zero,
		EstoqueBaixo:      []dto.ProdutoResponse{},
	}

	for i := range produtos {
		p := &produtos[i]
		qtd := decimal.NewFromInt(int64(p.Quantidade))
		if p.PrecoCompra != nil {
			resp.ValorEstoqueCusto = resp.ValorEstoqueCusto.Add(p.PrecoCompra.Mul(qtd))
		}
		resp.ValorEstoqueVenda = resp.ValorEstoqueVenda.Add(p.Preco.Mul(qtd))
		if p.Quantidade < limiteEstoqueBaixo {
			resp.EstoqueBaixo = append(resp.EstoqueBaixo, *produtoToResponse(p))
		}
	}
	resp.LucroEstimado = resp.ValorEstoqueVenda.Sub(resp.ValorEstoqueCusto)

	// Both series keep first-encounter order over the sales fold.
	porProduto := make(map[string]int)
	var produtoLabels []string
	porDia := make(map[string]decimal.Decimal)
	var diaLabels []string

	for i := range vendas {
		v := &vendas[i]
		resp.TotalFaturamento = resp.TotalFaturamento.Add(v.ValorTotal)
		resp.TotalItensVendidos += v.Quantidade

		// Sales whose product reference no longer resolves are skipped.
		if v.Produto != nil {
			if _, ok := porProduto[v.Produto.Nome]; !ok {
				produtoLabels = append(produtoLabels, v.Produto.Nome)
			}
			porProduto[v.Produto.Nome] += v.Quantidade
		}

		// Day/month label only: sales from different years with the same
		// label are summed together (known limitation, kept for parity).
		dia := v.Data.Format("02/01")
		if _, ok := porDia[dia]; !ok {
			diaLabels = append(diaLabels, dia)
			porDia[dia] = decimal.Zero
		}
		porDia[dia] = porDia[dia].Add(v.ValorTotal)
	}

	resp.VendasPorProduto = dto.SerieQuantidade{
		Labels:  produtoLabels,
		Valores: make([]int, len(produtoLabels)),
	}
	for i, label := range produtoLabels {
		resp.VendasPorProduto.Valores[i] = porProduto[label]
	}
	resp.FaturamentoDiario = dto.SerieValor{
		Labels:  diaLabels,
		Valores: make([]decimal.Decimal, len(diaLabels)),
	}
	for i, label := range diaLabels {
		resp.FaturamentoDiario.Valores[i] = porDia[label]
	}

	return resp, nil
}
