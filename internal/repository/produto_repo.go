package repository

import (
	"context"

	"estoque/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProdutoRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ProdutoRepository interface {
	Create(ctx context.Context, p *model.Produto) error
	FindByID(ctx context.Context, id uint) (*model.Produto, error)
	List(ctx context.Context) ([]model.Produto, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, p *model.Produto) error
	Delete(ctx context.Context, id uint) error

	// Used inside transactions — callers must pass the tx instance.
	// FindByIDForUpdateTx locks the row (SELECT … FOR UPDATE) so concurrent
	// sales serialize on the stock check.
	FindByIDForUpdateTx(tx *gorm.DB, id uint) (*model.Produto, error)
	FindByNomeTx(tx *gorm.DB, nome string) (*model.Produto, error)
	CreateTx(tx *gorm.DB, p *model.Produto) error
	SaveTx(tx *gorm.DB, p *model.Produto) error
	UpdateEstoqueTx(tx *gorm.DB, id uint, delta int) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type produtoRepo struct{ db *gorm.DB }

func NewProdutoRepository(db *gorm.DB) ProdutoRepository { return &produtoRepo{db: db} }

func (r *produtoRepo) Create(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *produtoRepo) FindByID(ctx context.Context, id uint) (*model.Produto, error) {
	var p model.Produto
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *produtoRepo) List(ctx context.Context) ([]model.Produto, error) {
	var produtos []model.Produto
	err := r.db.WithContext(ctx).Order("id ASC").Find(&produtos).Error
	return produtos, err
}

func (r *produtoRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Produto{}).Count(&total).Error
	return total, err
}

func (r *produtoRepo) Update(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *produtoRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Produto{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *produtoRepo) FindByIDForUpdateTx(tx *gorm.DB, id uint) (*model.Produto, error) {
	var p model.Produto
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, id).Error
	return &p, err
}

func (r *produtoRepo) FindByNomeTx(tx *gorm.DB, nome string) (*model.Produto, error) {
	var p model.Produto
	err := tx.Where("nome = ?", nome).First(&p).Error
	return &p, err
}

func (r *produtoRepo) CreateTx(tx *gorm.DB, p *model.Produto) error {
	return tx.Create(p).Error
}

func (r *produtoRepo) SaveTx(tx *gorm.DB, p *model.Produto) error {
	return tx.Save(p).Error
}

func (r *produtoRepo) UpdateEstoqueTx(tx *gorm.DB, id uint, delta int) error {
	return tx.Model(&model.Produto{}).Where("id = ?", id).
		Update("quantidade", gorm.Expr("quantidade + ?", delta)).Error
}

func (r *produtoRepo) DB() *gorm.DB { return r.db }
