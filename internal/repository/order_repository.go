package repository

import (
	"context"

	"shop/internal/domain/model"
)

type OrderRepository interface {
	// 注文を明細ごと保存して注文IDを返す。
	Create(ctx context.Context, order model.Order) (int64, error)
	// 注文を明細つきで取得。無ければ ErrNotFound。
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	// 会員の注文履歴（明細つき、新しい順）と総件数。
	ListByMemberID(ctx context.Context, memberID int64, page int, limit int) ([]model.Order, int64, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
}
