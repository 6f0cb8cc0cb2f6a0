package repository

import (
	"context"

	"shop/internal/domain/model"
)

type CartRepository interface {
	// 会員のカートを取得。無ければ ErrNotFound。
	FindByMemberID(ctx context.Context, memberID int64) (model.Cart, error)
	// カート作成（最初の追加時だけ呼ばれる）。
	Create(ctx context.Context, cart model.Cart) (model.Cart, error)
}
