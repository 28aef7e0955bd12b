package repository

import (
	"context"

	"estoque/internal/model"

	"gorm.io/gorm"
)

type VendaRepository interface {
	CreateTx(tx *gorm.DB, v *model.Venda) error
	// List returns every sale newest first with product and customer preloaded.
	List(ctx context.Context) ([]model.Venda, error)
	// ListAll returns every sale in insertion order (reports, CSV export).
	ListAll(ctx context.Context) ([]model.Venda, error)
	Count(ctx context.Context) (int64, error)
	DeleteAllTx(tx *gorm.DB) error
	DB() *gorm.DB // exposes the DB for transaction creation in the service layer
}

type vendaRepo struct{ db *gorm.DB }

func NewVendaRepository(db *gorm.DB) VendaRepository { return &vendaRepo{db: db} }

func (r *vendaRepo) DB() *gorm.DB { return r.db }

func (r *vendaRepo) CreateTx(tx *gorm.DB, v *model.Venda) error {
	return tx.Create(v).Error
}

func (r *vendaRepo) List(ctx context.Context) ([]model.Venda, error) {
	var vendas []model.Venda
	err := r.db.WithContext(ctx).
		Preload("Produto").Preload("Cliente").
		Order("data DESC").
		Find(&vendas).Error
	return vendas, err
}

func (r *vendaRepo) ListAll(ctx context.Context) ([]model.Venda, error) {
	var vendas []model.Venda
	err := r.db.WithContext(ctx).
		Preload("Produto").Preload("Cliente").
		Order("id ASC").
		Find(&vendas).Error
	return vendas, err
}

func (r *vendaRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Venda{}).Count(&total).Error
	return total, err
}

func (r *vendaRepo) DeleteAllTx(tx *gorm.DB) error {
	return tx.Where("1 = 1").Delete(&model.Venda{}).Error
}
