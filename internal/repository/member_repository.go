package repository

import (
	"context"
	"errors"

	"shop/internal/domain/model"
)

// 既に登録済みのメールで作成しようとした
var ErrDuplicateEmail = errors.New("email already registered")

// 会員の保存・取得を約束
type MemberRepository interface {
	// 新規会員作成。email重複なら ErrDuplicateEmail。
	Create(ctx context.Context, member *model.Member) error
	// メールから会員を1件取得する。
	FindByEmail(ctx context.Context, email string) (model.Member, error)
	// IDから会員を1件取得する。
	FindByID(ctx context.Context, memberID int64) (model.Member, error)
}
