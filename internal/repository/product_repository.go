package repository

import (
	"context"
	"errors"

	"shop/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 登録期間の絞り込み（全期間・1日・1週間・1ヶ月・半年）
type RegisteredWithin string

const (
	RegisteredAll      RegisteredWithin = "all"
	RegisteredDay      RegisteredWithin = "1d"
	RegisteredWeek     RegisteredWithin = "1w"
	RegisteredMonth    RegisteredWithin = "1m"
	RegisteredHalfYear RegisteredWithin = "6m"
)

// 管理者の商品検索条件。
// 条件はこの構造体に全部まとめて、クエリ組み立ては1箇所（infra側）で行う。
type ProductSearchFilter struct {
	RegisteredWithin RegisteredWithin
	SellStatus       *model.SellStatus
	SearchBy         string // "name" / "created_by"
	Query            string
	Page             int
	Limit            int
}

// ストア画面の商品検索条件。
type MainProductQuery struct {
	Query string
	Page  int
	Limit int
}

// ストア一覧の1行（代表画像つき）。
type MainProduct struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Detail   string `json:"detail"`
	ImageURL string `json:"image_url"`
	Price    int64  `json:"price"`
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	FindByID(ctx context.Context, productID int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	// 在庫の引き当て・戻しを含む商品の変更を保存する。
	Update(ctx context.Context, p model.Product) error

	// 管理者用の商品一覧（フィルタ＋ページング、id降順）。
	ListAdmin(ctx context.Context, f ProductSearchFilter) ([]model.Product, int64, error)
	// ストア用の商品一覧（代表画像をjoin、id降順）。
	ListMain(ctx context.Context, q MainProductQuery) ([]MainProduct, int64, error)
}
