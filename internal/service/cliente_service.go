package service

import (
	"context"
	"errors"

	"estoque/internal/dto"
	"estoque/internal/model"
	"estoque/internal/repository"

	"gorm.io/gorm"
)

type ClienteService interface {
	Criar(ctx context.Context, req dto.ClienteFormRequest) (*dto.ClienteResponse, error)
	ObterPorID(ctx context.Context, id uint) (*dto.ClienteResponse, error)
	Listar(ctx context.Context) ([]dto.ClienteResponse, error)
	Atualizar(ctx context.Context, id uint, req dto.ClienteFormRequest) (*dto.ClienteResponse, error)
	Remover(ctx context.Context, id uint) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Criar(ctx context.Context, req dto.ClienteFormRequest) (*dto.ClienteResponse, error) {
	c := clienteFromForm(req)
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) ObterPorID(ctx context.Context, id uint) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ClienteResponse, len(clientes))
	for i := range clientes {
		resp[i] = *clienteToResponse(&clientes[i])
	}
	return resp, nil
}

func (s *clienteService) Atualizar(ctx context.Context, id uint, req dto.ClienteFormRequest) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	novo := clienteFromForm(req)
	c.Nome = novo.Nome
	c.Telefone = novo.Telefone
	c.Email = novo.Email
	c.Cidade = novo.Cidade
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) Remover(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNaoEncontrado
		}
		return err
	}
	return nil
}

func clienteFromForm(req dto.ClienteFormRequest) *model.Cliente {
	c := &model.Cliente{Nome: req.Nome}
	if req.Telefone != "" {
		v := req.Telefone
		c.Telefone = &v
	}
	if req.Email != "" {
		v := req.Email
		c.Email = &v
	}
	if req.Cidade != "" {
		v := req.Cidade
		c.Cidade = &v
	}
	return c
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:       c.ID,
		Nome:     c.Nome,
		Telefone: c.Telefone,
		Email:    c.Email,
		Cidade:   c.Cidade,
	}
}
