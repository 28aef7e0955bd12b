package service_test

import (
	"context"
	"errors"
	"sort"

	"estoque/internal/model"
	"estoque/internal/repository"

	"gorm.io/gorm"
)

// ── In-memory ProdutoRepository stub ─────────────────────────────────────────

type stubProdutoRepo struct {
	produtos map[uint]*model.Produto
	seq      uint
	failSave bool
}

func newStubProdutoRepo() *stubProdutoRepo {
	return &stubProdutoRepo{produtos: make(map[uint]*model.Produto)}
}

func (r *stubProdutoRepo) Create(_ context.Context, p *model.Produto) error {
	r.seq++
	p.ID = r.seq
	r.produtos[p.ID] = p
	return nil
}

func (r *stubProdutoRepo) FindByID(_ context.Context, id uint) (*model.Produto, error) {
	p, ok := r.produtos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProdutoRepo) List(_ context.Context) ([]model.Produto, error) {
	ids := make([]int, 0, len(r.produtos))
	for id := range r.produtos {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	result := make([]model.Produto, 0, len(ids))
	for _, id := range ids {
		result = append(result, *r.produtos[uint(id)])
	}
	return result, nil
}

func (r *stubProdutoRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.produtos)), nil
}

func (r *stubProdutoRepo) Update(_ context.Context, p *model.Produto) error {
	r.produtos[p.ID] = p
	return nil
}

func (r *stubProdutoRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.produtos[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.produtos, id)
	return nil
}

func (r *stubProdutoRepo) FindByIDForUpdateTx(_ *gorm.DB, id uint) (*model.Produto, error) {
	p, ok := r.produtos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProdutoRepo) FindByNomeTx(_ *gorm.DB, nome string) (*model.Produto, error) {
	ids := make([]int, 0, len(r.produtos))
	for id := range r.produtos {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	for _, id := range ids {
		if r.produtos[uint(id)].Nome == nome {
			return r.produtos[uint(id)], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProdutoRepo) CreateTx(_ *gorm.DB, p *model.Produto) error {
	if r.failSave {
		return errors.New("save failed")
	}
	r.seq++
	p.ID = r.seq
	r.produtos[p.ID] = p
	return nil
}

func (r *stubProdutoRepo) SaveTx(_ *gorm.DB, p *model.Produto) error {
	if r.failSave {
		return errors.New("save failed")
	}
	r.produtos[p.ID] = p
	return nil
}

func (r *stubProdutoRepo) UpdateEstoqueTx(_ *gorm.DB, id uint, delta int) error {
	p, ok := r.produtos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Quantidade += delta
	return nil
}

func (r *stubProdutoRepo) DB() *gorm.DB { return nil }

var _ repository.ProdutoRepository = (*stubProdutoRepo)(nil)

// ── In-memory ClienteRepository stub ─────────────────────────────────────────

type stubClienteRepo struct {
	clientes map[uint]*model.Cliente
	seq      uint
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uint]*model.Cliente)}
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	r.seq++
	c.ID = r.seq
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uint) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) List(_ context.Context) ([]model.Cliente, error) {
	ids := make([]int, 0, len(r.clientes))
	for id := range r.clientes {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	result := make([]model.Cliente, 0, len(ids))
	for _, id := range ids {
		result = append(result, *r.clientes[uint(id)])
	}
	return result, nil
}

func (r *stubClienteRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.clientes)), nil
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.clientes[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.clientes, id)
	return nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// ── In-memory VendaRepository stub ───────────────────────────────────────────

type stubVendaRepo struct {
	vendas     []*model.Venda
	seq        uint
	failDelete bool
}

func newStubVendaRepo() *stubVendaRepo { return &stubVendaRepo{} }

func (r *stubVendaRepo) CreateTx(_ *gorm.DB, v *model.Venda) error {
	r.seq++
	v.ID = r.seq
	r.vendas = append(r.vendas, v)
	return nil
}

func (r *stubVendaRepo) List(_ context.Context) ([]model.Venda, error) {
	ordered := make([]model.Venda, len(r.vendas))
	for i, v := range r.vendas {
		ordered[i] = *v
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Data.After(ordered[j].Data)
	})
	return ordered, nil
}

func (r *stubVendaRepo) ListAll(_ context.Context) ([]model.Venda, error) {
	result := make([]model.Venda, len(r.vendas))
	for i, v := range r.vendas {
		result[i] = *v
	}
	return result, nil
}

func (r *stubVendaRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.vendas)), nil
}

func (r *stubVendaRepo) DeleteAllTx(_ *gorm.DB) error {
	if r.failDelete {
		return errors.New("delete failed")
	}
	r.vendas = nil
	return nil
}

func (r *stubVendaRepo) DB() *gorm.DB { return nil }

var _ repository.VendaRepository = (*stubVendaRepo)(nil)

// ── In-memory UsuarioRepository stub ─────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[uint]*model.Usuario
	seq      uint
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uint]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	r.seq++
	u.ID = r.seq
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uint) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)
