package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"estoque/internal/dto"
	"estoque/internal/model"
	"estoque/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Export kinds accepted by Exportar. The Portuguese aliases are kept for the
// legacy form markup; the English segments are the canonical route values.
const (
	ExportProdutos = "products"
	ExportVendas   = "sales"
	ExportClientes = "customers"
)

// ErrArquivoInvalido is returned when the uploaded CSV cannot be read at all
// (as opposed to individual rows failing to parse, which are only counted).
var ErrArquivoInvalido = errors.New("Não foi possível processar o arquivo CSV.")

// GerenciamentoService covers the bulk data operations: CSV template,
// import, export, and clearing the sales history.
type GerenciamentoService interface {
	Modelo(ctx context.Context) (*dto.GerenciamentoModel, error)
	// ModeloCSV writes the import template: the header row plus one example.
	ModeloCSV(w io.Writer) error
	// ImportarCSV upserts products by exact name match: existing products get
	// the row's quantity added to stock (cost overwritten only when > 0), new
	// names are inserted. The whole import commits as one unit.
	ImportarCSV(ctx context.Context, r io.Reader) (*dto.ImportacaoResponse, error)
	// Exportar streams all rows of the requested kind and returns the
	// suggested filename.
	Exportar(ctx context.Context, tipo string, w io.Writer) (string, error)
	// LimparVendas deletes every sale in one transaction.
	LimparVendas(ctx context.Context) error
}

type gerenciamentoService struct {
	produtoRepo repository.ProdutoRepository
	clienteRepo repository.ClienteRepository
	vendaRepo   repository.VendaRepository
}

func NewGerenciamentoService(
	produtoRepo repository.ProdutoRepository,
	clienteRepo repository.ClienteRepository,
	vendaRepo repository.VendaRepository,
) GerenciamentoService {
	return &gerenciamentoService{produtoRepo: produtoRepo, clienteRepo: clienteRepo, vendaRepo: vendaRepo}
}

func (s *gerenciamentoService) Modelo(ctx context.Context) (*dto.GerenciamentoModel, error) {
	produtos, err := s.produtoRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	clientes, err := s.clienteRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	vendas, err := s.vendaRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.GerenciamentoModel{
		TotalProdutos: produtos,
		TotalClientes: clientes,
		TotalVendas:   vendas,
	}, nil
}

func (s *gerenciamentoService) ModeloCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"nome", "quantidade", "preco_venda", "preco_custo", "validade"}); err != nil {
		return err
	}
	if err := writer.Write([]string{"Exemplo Camiseta", "10", "50.00", "25.00", ""}); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

// linhaImportacao is the per-row result of the parse phase. Rows that fail any
// rule never reach this struct — they only bump the skipped counter.
type linhaImportacao struct {
	nome       string
	quantidade int
	precoVenda decimal.Decimal
	precoCusto decimal.Decimal
	validade   string
}

func (s *gerenciamentoService) ImportarCSV(ctx context.Context, r io.Reader) (*dto.ImportacaoResponse, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArquivoInvalido, err)
	}
	if len(rows) > 0 {
		rows = rows[1:] // header
	}

	resp := &dto.ImportacaoResponse{}
	var linhas []linhaImportacao
	for _, row := range rows {
		linha, ok := parseLinha(row)
		if !ok {
			resp.Ignorados++
			continue
		}
		linhas = append(linhas, linha)
	}

	// All upserts commit at the end as one unit; any failure rolls everything
	// back and no counts are reported.
	txErr := runTx(ctx, s.produtoRepo.DB(), func(tx *gorm.DB) error {
		for _, linha := range linhas {
			existente, err := s.produtoRepo.FindByNomeTx(tx, linha.nome)
			switch {
			case err == nil:
				existente.Quantidade += linha.quantidade
				// An explicit zero or blank cost never overwrites a stored cost.
				if linha.precoCusto.IsPositive() {
					custo := linha.precoCusto
					existente.PrecoCompra = &custo
				}
				if err := s.produtoRepo.SaveTx(tx, existente); err != nil {
					return err
				}
				resp.Atualizados++
			case errors.Is(err, gorm.ErrRecordNotFound):
				custo := linha.precoCusto
				var validade *string
				if linha.validade != "" {
					v := linha.validade
					validade = &v
				}
				novo := &model.Produto{
					Nome:        linha.nome,
					Quantidade:  linha.quantidade,
					Preco:       linha.precoVenda,
					PrecoCompra: &custo,
					Validade:    validade,
				}
				if err := s.produtoRepo.CreateTx(tx, novo); err != nil {
					return err
				}
				resp.Criados++
			default:
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return resp, nil
}

// parseLinha applies the row rules: fewer than 3 columns or a blank name skip
// the row, decimals accept comma as the separator, cost defaults to zero and
// expiry to empty when their columns are absent. Any numeric parse failure
// skips the row.
func parseLinha(row []string) (linhaImportacao, bool) {
	var linha linhaImportacao
	if len(row) < 3 {
		return linha, false
	}
	linha.nome = strings.TrimSpace(row[0])
	if linha.nome == "" {
		return linha, false
	}
	qtd, err := strconv.Atoi(strings.TrimSpace(row[1]))
	if err != nil {
		return linha, false
	}
	linha.quantidade = qtd
	precoVenda, err := parseDecimalVirgula(row[2])
	if err != nil {
		return linha, false
	}
	linha.precoVenda = precoVenda
	linha.precoCusto = decimal.Zero
	if len(row) > 3 && strings.TrimSpace(row[3]) != "" {
		custo, err := parseDecimalVirgula(row[3])
		if err != nil {
			return linha, false
		}
		linha.precoCusto = custo
	}
	if len(row) > 4 {
		linha.validade = strings.TrimSpace(row[4])
	}
	return linha, true
}

// parseDecimalVirgula accepts both "10.50" and the comma locale "10,50".
func parseDecimalVirgula(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", "."))
}

func (s *gerenciamentoService) Exportar(ctx context.Context, tipo string, w io.Writer) (string, error) {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	switch tipo {
	case ExportProdutos, "produtos":
		produtos, err := s.produtoRepo.List(ctx)
		if err != nil {
			return "", err
		}
		if err := writer.Write([]string{"ID", "Nome", "Quantidade", "Preço Venda", "Preço Custo"}); err != nil {
			return "", err
		}
		for i := range produtos {
			p := &produtos[i]
			custo := ""
			if p.PrecoCompra != nil {
				custo = p.PrecoCompra.String()
			}
			if err := writer.Write([]string{
				strconv.FormatUint(uint64(p.ID), 10),
				p.Nome,
				strconv.Itoa(p.Quantidade),
				p.Preco.String(),
				custo,
			}); err != nil {
				return "", err
			}
		}
		writer.Flush()
		return "produtos.csv", writer.Error()

	case ExportVendas, "vendas":
		vendas, err := s.vendaRepo.ListAll(ctx)
		if err != nil {
			return "", err
		}
		if err := writer.Write([]string{"ID", "Data", "Produto", "Cliente", "Qtd", "Total"}); err != nil {
			return "", err
		}
		for i := range vendas {
			v := &vendas[i]
			produto := ProdutoRemovido
			if v.Produto != nil {
				produto = v.Produto.Nome
			}
			cliente := ClienteBalcao
			if v.Cliente != nil {
				cliente = v.Cliente.Nome
			}
			if err := writer.Write([]string{
				strconv.FormatUint(uint64(v.ID), 10),
				v.Data.Format("2006-01-02 15:04:05"),
				produto,
				cliente,
				strconv.Itoa(v.Quantidade),
				v.ValorTotal.String(),
			}); err != nil {
				return "", err
			}
		}
		writer.Flush()
		return "vendas.csv", writer.Error()

	case ExportClientes, "clientes":
		clientes, err := s.clienteRepo.List(ctx)
		if err != nil {
			return "", err
		}
		if err := writer.Write([]string{"ID", "Nome", "Telefone", "Email", "Cidade"}); err != nil {
			return "", err
		}
		for i := range clientes {
			c := &clientes[i]
			if err := writer.Write([]string{
				strconv.FormatUint(uint64(c.ID), 10),
				c.Nome,
				strOuVazio(c.Telefone),
				strOuVazio(c.Email),
				strOuVazio(c.Cidade),
			}); err != nil {
				return "", err
			}
		}
		writer.Flush()
		return "clientes.csv", writer.Error()
	}

	return "", ErrNaoEncontrado
}

func (s *gerenciamentoService) LimparVendas(ctx context.Context) error {
	return runTx(ctx, s.vendaRepo.DB(), func(tx *gorm.DB) error {
		return s.vendaRepo.DeleteAllTx(tx)
	})
}

func strOuVazio(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
