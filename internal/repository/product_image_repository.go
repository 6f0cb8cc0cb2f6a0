package repository

import (
	"context"

	"shop/internal/domain/model"
)

// 商品画像の保存・取得を約束
type ProductImageRepository interface {
	Create(ctx context.Context, img model.ProductImage) (model.ProductImage, error)
	Update(ctx context.Context, img model.ProductImage) error
	FindByID(ctx context.Context, imageID int64) (model.ProductImage, error)
	// 商品の画像一覧（登録順）。
	ListByProductID(ctx context.Context, productID int64) ([]model.ProductImage, error)
	// 商品の代表画像を1件取得。無ければ ErrNotFound。
	FindRepByProductID(ctx context.Context, productID int64) (model.ProductImage, error)
}
