package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"estoque/internal/dto"
	"estoque/internal/model"
	"estoque/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Sentinels shown when a sale's reference no longer resolves.
const (
	ProdutoRemovido = "Removido"
	ClienteBalcao   = "Balcão"
)

type VendaService interface {
	// RegistrarVenda creates a sale, decrementing the product's stock in the
	// same transaction. The total is snapshotted from the current price and
	// never recalculated. Fails with EstoqueInsuficienteError — performing no
	// mutation — when the requested quantity exceeds current stock.
	RegistrarVenda(ctx context.Context, req dto.RegistrarVendaRequest) (*dto.VendaResponse, error)
	// ListarVendas returns every sale newest first.
	ListarVendas(ctx context.Context) ([]dto.VendaResponse, error)
	// FormularioVenda returns the product and customer lists the sale form
	// selects from.
	FormularioVenda(ctx context.Context) (*dto.NovaVendaModel, error)
}

type vendaService struct {
	repo        repository.VendaRepository
	produtoRepo repository.ProdutoRepository
	clienteRepo repository.ClienteRepository
}

func NewVendaService(
	repo repository.VendaRepository,
	produtoRepo repository.ProdutoRepository,
	clienteRepo repository.ClienteRepository,
) VendaService {
	return &vendaService{repo: repo, produtoRepo: produtoRepo, clienteRepo: clienteRepo}
}

func (s *vendaService) RegistrarVenda(ctx context.Context, req dto.RegistrarVendaRequest) (*dto.VendaResponse, error) {
	produtoID, err := strconv.ParseUint(strings.TrimSpace(req.ProdutoID), 10, 64)
	if err != nil {
		return nil, entradaInvalida("Produto inválido.")
	}
	quantidade, err := strconv.Atoi(strings.TrimSpace(req.Quantidade))
	if err != nil {
		return nil, entradaInvalida("Quantidade inválida.")
	}
	var clienteID *uint
	if c := strings.TrimSpace(req.ClienteID); c != "" {
		id, err := strconv.ParseUint(c, 10, 64)
		if err != nil {
			return nil, entradaInvalida("Cliente inválido.")
		}
		cid := uint(id)
		clienteID = &cid
	}

	// Stock check, decrement, and sale insert commit as one unit. The product
	// row is locked so concurrent sales serialize on the check and can never
	// jointly drive the stock negative.
	var venda model.Venda
	var produtoNome string
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		p, err := s.produtoRepo.FindByIDForUpdateTx(tx, uint(produtoID))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNaoEncontrado
			}
			return err
		}
		if p.Quantidade < quantidade {
			return &EstoqueInsuficienteError{Disponivel: p.Quantidade}
		}
		produtoNome = p.Nome

		venda = model.Venda{
			Data:       time.Now(),
			Quantidade: quantidade,
			ValorTotal: p.Preco.Mul(decimal.NewFromInt(int64(quantidade))),
			ProdutoID:  p.ID,
			ClienteID:  clienteID,
		}
		if err := s.produtoRepo.UpdateEstoqueTx(tx, p.ID, -quantidade); err != nil {
			return err
		}
		return s.repo.CreateTx(tx, &venda)
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := vendaToResponse(&venda)
	resp.Produto = produtoNome
	return resp, nil
}

func (s *vendaService) ListarVendas(ctx context.Context) ([]dto.VendaResponse, error) {
	vendas, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.VendaResponse, len(vendas))
	for i := range vendas {
		resp[i] = *vendaToResponse(&vendas[i])
	}
	return resp, nil
}

func (s *vendaService) FormularioVenda(ctx context.Context) (*dto.NovaVendaModel, error) {
	produtos, err := s.produtoRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	clientes, err := s.clienteRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	m := &dto.NovaVendaModel{
		Produtos: make([]dto.ProdutoResponse, len(produtos)),
		Clientes: make([]dto.ClienteResponse, len(clientes)),
	}
	for i := range produtos {
		m.Produtos[i] = *produtoToResponse(&produtos[i])
	}
	for i := range clientes {
		m.Clientes[i] = *clienteToResponse(&clientes[i])
	}
	return m, nil
}

// vendaToResponse resolves references defensively: a dangling product shows as
// "Removido", a missing customer as the walk-in sentinel.
func vendaToResponse(v *model.Venda) *dto.VendaResponse {
	produto := ProdutoRemovido
	if v.Produto != nil {
		produto = v.Produto.Nome
	}
	cliente := ClienteBalcao
	if v.Cliente != nil {
		cliente = v.Cliente.Nome
	}
	return &dto.VendaResponse{
		ID:         v.ID,
		Data:       v.Data.Format("2006-01-02T15:04:05Z07:00"),
		Produto:    produto,
		Cliente:    cliente,
		Quantidade: v.Quantidade,
		ValorTotal: v.ValorTotal,
	}
}
