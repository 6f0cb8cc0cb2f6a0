package repository

import (
	"context"

	repo "shop/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	members       repo.MemberRepository
	products      repo.ProductRepository
	productImages repo.ProductImageRepository
	carts         repo.CartRepository
	cartItems     repo.CartItemRepository
	orders        repo.OrderRepository
}

func (r *txReposGorm) Members() repo.MemberRepository             { return r.members }
func (r *txReposGorm) Products() repo.ProductRepository           { return r.products }
func (r *txReposGorm) ProductImages() repo.ProductImageRepository { return r.productImages }
func (r *txReposGorm) Carts() repo.CartRepository                 { return r.carts }
func (r *txReposGorm) CartItems() repo.CartItemRepository         { return r.cartItems }
func (r *txReposGorm) Orders() repo.OrderRepository               { return r.orders }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			members:       NewMemberGormRepository(tx),
			products:      NewProductGormRepository(tx),
			productImages: NewProductImageGormRepository(tx),
			carts:         NewCartGormRepository(tx),
			cartItems:     NewCartItemGormRepository(tx),
			orders:        NewOrderGormRepository(tx),
		}
		return fn(r)
	})
}
