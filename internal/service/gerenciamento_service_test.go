package service_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"estoque/internal/model"
	"estoque/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildGerenciamentoSvc() (service.GerenciamentoService, *stubProdutoRepo, *stubClienteRepo, *stubVendaRepo) {
	produtoRepo := newStubProdutoRepo()
	clienteRepo := newStubClienteRepo()
	vendaRepo := newStubVendaRepo()
	svc := service.NewGerenciamentoService(produtoRepo, clienteRepo, vendaRepo)
	return svc, produtoRepo, clienteRepo, vendaRepo
}

func TestModelo(t *testing.T) {
	svc, produtoRepo, clienteRepo, vendaRepo := buildGerenciamentoSvc()
	seedProduto(produtoRepo, "Camiseta", 10, "50.00")
	require.NoError(t, clienteRepo.Create(context.Background(), &model.Cliente{Nome: "Maria"}))
	require.NoError(t, vendaRepo.CreateTx(nil, &model.Venda{Data: time.Now(), Quantidade: 1,
		ValorTotal: decimal.RequireFromString("50.00"), ProdutoID: 1}))

	m, err := svc.Modelo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), m.TotalProdutos)
	assert.Equal(t, int64(1), m.TotalClientes)
	assert.Equal(t, int64(1), m.TotalVendas)
}

func TestModeloCSV(t *testing.T) {
	svc, _, _, _ := buildGerenciamentoSvc()

	var buf bytes.Buffer
	require.NoError(t, svc.ModeloCSV(&buf))

	linhas := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, linhas, 2)
	assert.Equal(t, "nome,quantidade,preco_venda,preco_custo,validade", linhas[0])
	assert.True(t, strings.HasPrefix(linhas[1], "Exemplo Camiseta,10,"))
}

func TestImportarCSV_CriaEAtualiza(t *testing.T) {
	svc, produtoRepo, _, _ := buildGerenciamentoSvc()
	existente := seedProduto(produtoRepo, "Camiseta", 10, "50.00")
	custoAntigo := decimal.RequireFromString("20.00")
	existente.PrecoCompra = &custoAntigo

	csv := "nome,quantidade,preco_venda,preco_custo,validade\n" +
		"Camiseta,5,60.00,30.00,\n" +
		"Boné,3,25.00,,2027-06-01\n"

	resp, err := svc.ImportarCSV(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Criados)
	assert.Equal(t, 1, resp.Atualizados)
	assert.Equal(t, 0, resp.Ignorados)

	// Existing name: stock is additive, cost overwritten, price kept.
	assert.Equal(t, 15, existente.Quantidade)
	require.NotNil(t, existente.PrecoCompra)
	assert.True(t, existente.PrecoCompra.Equal(decimal.RequireFromString("30.00")))
	assert.True(t, existente.Preco.Equal(decimal.RequireFromString("50.00")))

	novo, err := produtoRepo.FindByNomeTx(nil, "Boné")
	require.NoError(t, err)
	assert.Equal(t, 3, novo.Quantidade)
	require.NotNil(t, novo.PrecoCompra)
	assert.True(t, novo.PrecoCompra.IsZero())
	require.NotNil(t, novo.Validade)
	assert.Equal(t, "2027-06-01", *novo.Validade)
}

func TestImportarCSV_VirgulaComoDecimal(t *testing.T) {
	svc, produtoRepo, _, _ := buildGerenciamentoSvc()

	csv := "nome,quantidade,preco_venda,preco_custo\n" +
		"Camiseta,2,\"10,50\",\"5,25\"\n"

	resp, err := svc.ImportarCSV(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Criados)

	p, err := produtoRepo.FindByNomeTx(nil, "Camiseta")
	require.NoError(t, err)
	assert.True(t, p.Preco.Equal(decimal.RequireFromString("10.50")))
	assert.True(t, p.PrecoCompra.Equal(decimal.RequireFromString("5.25")))
}

func TestImportarCSV_CustoEmBrancoNaoSobrescreve(t *testing.T) {
	svc, produtoRepo, _, _ := buildGerenciamentoSvc()
	existente := seedProduto(produtoRepo, "Camiseta", 10, "50.00")
	custo := decimal.RequireFromString("20.00")
	existente.PrecoCompra = &custo

	csv := "nome,quantidade,preco_venda,preco_custo\n" +
		"Camiseta,1,50.00,\n" +
		"Camiseta,1,50.00,0\n"

	resp, err := svc.ImportarCSV(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Atualizados)

	// Blank and zero both leave the stored cost alone.
	require.NotNil(t, existente.PrecoCompra)
	assert.True(t, existente.PrecoCompra.Equal(decimal.RequireFromString("20.00")))
	assert.Equal(t, 12, existente.Quantidade)
}

func TestImportarCSV_LinhasIgnoradas(t *testing.T) {
	svc, produtoRepo, _, _ := buildGerenciamentoSvc()

	csv := "nome,quantidade,preco_venda\n" +
		"SoNome\n" +
		"  ,5,10.00\n" +
		"Camiseta,muitos,10.00\n" +
		"Boné,3,caro\n" +
		"Valida,2,15.00\n"

	resp, err := svc.ImportarCSV(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Criados)
	assert.Equal(t, 4, resp.Ignorados)

	count, _ := produtoRepo.Count(context.Background())
	assert.Equal(t, int64(1), count)
}

func TestImportarCSV_ArquivoIlegivel(t *testing.T) {
	svc, _, _, _ := buildGerenciamentoSvc()

	// Unbalanced quote makes the whole file unreadable.
	_, err := svc.ImportarCSV(context.Background(), strings.NewReader("nome,qtd\n\"aberta,1\nboa,2\n"))
	assert.ErrorIs(t, err, service.ErrArquivoInvalido)
}

func TestExportarProdutos(t *testing.T) {
	svc, produtoRepo, _, _ := buildGerenciamentoSvc()
	p := seedProduto(produtoRepo, "Camiseta", 10, "50.00")
	custo := decimal.RequireFromString("25.00")
	p.PrecoCompra = &custo
	seedProduto(produtoRepo, "Boné", 3, "30.00")

	var buf bytes.Buffer
	nome, err := svc.Exportar(context.Background(), "products", &buf)
	require.NoError(t, err)
	assert.Equal(t, "produtos.csv", nome)

	linhas := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, linhas, 3)
	assert.Equal(t, "ID,Nome,Quantidade,Preço Venda,Preço Custo", linhas[0])
	assert.Equal(t, "1,Camiseta,10,50,25", linhas[1])
	// Unknown cost exports as an empty column.
	assert.Equal(t, "2,Boné,3,30,", linhas[2])
}

func TestExportarVendas_ReferenciasPendentes(t *testing.T) {
	svc, _, _, vendaRepo := buildGerenciamentoSvc()
	require.NoError(t, vendaRepo.CreateTx(nil, &model.Venda{
		Data:       time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
		Quantidade: 2,
		ValorTotal: decimal.RequireFromString("100.00"),
		ProdutoID:  42,
	}))

	var buf bytes.Buffer
	nome, err := svc.Exportar(context.Background(), "sales", &buf)
	require.NoError(t, err)
	assert.Equal(t, "vendas.csv", nome)

	linhas := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, linhas, 2)
	assert.Equal(t, "ID,Data,Produto,Cliente,Qtd,Total", linhas[0])
	assert.Equal(t, "1,2026-03-15 10:30:00,Removido,Balcão,2,100", linhas[1])
}

func TestExportarClientes(t *testing.T) {
	svc, _, clienteRepo, _ := buildGerenciamentoSvc()
	tel := "11999990000"
	require.NoError(t, clienteRepo.Create(context.Background(), &model.Cliente{Nome: "Maria", Telefone: &tel}))

	var buf bytes.Buffer
	nome, err := svc.Exportar(context.Background(), "customers", &buf)
	require.NoError(t, err)
	assert.Equal(t, "clientes.csv", nome)

	linhas := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, linhas, 2)
	assert.Equal(t, "ID,Nome,Telefone,Email,Cidade", linhas[0])
	assert.Equal(t, "1,Maria,11999990000,,", linhas[1])
}

func TestExportar_AliasPortugues(t *testing.T) {
	svc, produtoRepo, _, _ := buildGerenciamentoSvc()
	seedProduto(produtoRepo, "Camiseta", 10, "50.00")

	// The legacy Portuguese segment resolves to the same export.
	var buf bytes.Buffer
	nome, err := svc.Exportar(context.Background(), "produtos", &buf)
	require.NoError(t, err)
	assert.Equal(t, "produtos.csv", nome)
	assert.Contains(t, buf.String(), "Camiseta")
}

func TestExportar_TipoDesconhecido(t *testing.T) {
	svc, _, _, _ := buildGerenciamentoSvc()

	var buf bytes.Buffer
	_, err := svc.Exportar(context.Background(), "fornecedores", &buf)
	assert.ErrorIs(t, err, service.ErrNaoEncontrado)
}

func TestLimparVendas(t *testing.T) {
	svc, _, _, vendaRepo := buildGerenciamentoSvc()
	require.NoError(t, vendaRepo.CreateTx(nil, &model.Venda{Data: time.Now(), Quantidade: 1,
		ValorTotal: decimal.RequireFromString("10.00"), ProdutoID: 1}))

	require.NoError(t, svc.LimparVendas(context.Background()))
	assert.Empty(t, vendaRepo.vendas)
}

func TestLimparVendas_ErroPropagado(t *testing.T) {
	svc, _, _, vendaRepo := buildGerenciamentoSvc()
	vendaRepo.failDelete = true

	assert.Error(t, svc.LimparVendas(context.Background()))
}
