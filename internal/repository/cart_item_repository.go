package repository

import (
	"context"

	"shop/internal/domain/model"
)

// カート一覧の1行（商品名・価格・代表画像をjoinした結果）。
type CartDetail struct {
	CartItemID int64  `json:"cart_item_id"`
	ProductID  int64  `json:"product_id"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Quantity   int64  `json:"quantity"`
	ImageURL   string `json:"image_url"`
}

type CartItemRepository interface {
	Create(ctx context.Context, item model.CartItem) (model.CartItem, error)
	FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error)
	// (cart, product) の既存明細を探す。無ければ ErrNotFound。
	FindByCartAndProduct(ctx context.Context, cartID int64, productID int64) (model.CartItem, error)
	// 数量変更などの保存。
	Update(ctx context.Context, item model.CartItem) error
	DeleteByID(ctx context.Context, cartItemID int64) error
	// 明細がその会員のカートに属しているか。
	IsOwnedByMember(ctx context.Context, cartItemID int64, email string) (bool, error)
	// カートの明細一覧（追加が新しい順）。
	ListDetailsByCartID(ctx context.Context, cartID int64) ([]CartDetail, error)
}
