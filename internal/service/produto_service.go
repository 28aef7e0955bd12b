package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"estoque/internal/dto"
	"estoque/internal/model"
	"estoque/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProdutoService is the inventory service: plain CRUD over products.
// Numeric fields arrive as text from the form and are only type-coerced;
// ranges are not validated (a negative quantity is accepted as typed).
type ProdutoService interface {
	Criar(ctx context.Context, req dto.ProdutoFormRequest) (*dto.ProdutoResponse, error)
	ObterPorID(ctx context.Context, id uint) (*dto.ProdutoResponse, error)
	Listar(ctx context.Context) ([]dto.ProdutoResponse, error)
	Atualizar(ctx context.Context, id uint, req dto.ProdutoFormRequest) (*dto.ProdutoResponse, error)
	Remover(ctx context.Context, id uint) error
}

type produtoService struct {
	repo repository.ProdutoRepository
}

func NewProdutoService(repo repository.ProdutoRepository) ProdutoService {
	return &produtoService{repo: repo}
}

func (s *produtoService) Criar(ctx context.Context, req dto.ProdutoFormRequest) (*dto.ProdutoResponse, error) {
	p, err := produtoFromForm(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return produtoToResponse(p), nil
}

func (s *produtoService) ObterPorID(ctx context.Context, id uint) (*dto.ProdutoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return produtoToResponse(p), nil
}

func (s *produtoService) Listar(ctx context.Context) ([]dto.ProdutoResponse, error) {
	produtos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProdutoResponse, len(produtos))
	for i := range produtos {
		resp[i] = *produtoToResponse(&produtos[i])
	}
	return resp, nil
}

func (s *produtoService) Atualizar(ctx context.Context, id uint, req dto.ProdutoFormRequest) (*dto.ProdutoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	novo, err := produtoFromForm(req)
	if err != nil {
		return nil, err
	}
	p.Nome = novo.Nome
	p.Quantidade = novo.Quantidade
	p.Preco = novo.Preco
	p.PrecoCompra = novo.PrecoCompra
	p.Validade = novo.Validade
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return produtoToResponse(p), nil
}

func (s *produtoService) Remover(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNaoEncontrado
		}
		return err
	}
	return nil
}

// ─── Form coercion ───────────────────────────────────────────────────────────

func produtoFromForm(req dto.ProdutoFormRequest) (*model.Produto, error) {
	qtd, err := strconv.Atoi(strings.TrimSpace(req.Quantidade))
	if err != nil {
		return nil, entradaInvalida("Quantidade inválida.")
	}
	preco, err := decimal.NewFromString(strings.TrimSpace(req.Preco))
	if err != nil {
		return nil, entradaInvalida("Preço inválido.")
	}
	p := &model.Produto{
		Nome:       req.Nome,
		Quantidade: qtd,
		Preco:      preco,
	}
	// Blank optional cost is stored as NULL, not zero.
	if compra := strings.TrimSpace(req.PrecoCompra); compra != "" {
		v, err := decimal.NewFromString(compra)
		if err != nil {
			return nil, entradaInvalida("Preço de compra inválido.")
		}
		p.PrecoCompra = &v
	}
	if req.Validade != "" {
		validade := req.Validade
		p.Validade = &validade
	}
	return p, nil
}

func produtoToResponse(p *model.Produto) *dto.ProdutoResponse {
	return &dto.ProdutoResponse{
		ID:          p.ID,
		Nome:        p.Nome,
		Quantidade:  p.Quantidade,
		Preco:       p.Preco,
		PrecoCompra: p.PrecoCompra,
		Validade:    p.Validade,
	}
}
