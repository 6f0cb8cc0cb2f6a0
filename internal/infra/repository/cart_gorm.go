package repository

import (
	"context"
	"errors"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"gorm.io/gorm"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

func (r *CartGormRepository) FindByMemberID(ctx context.Context, memberID int64) (model.Cart, error) {
	var cart model.Cart
	err := r.db.WithContext(ctx).Where("member_id = ?", memberID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cart{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// 最初の追加時だけ呼ばれる。同時作成でmember_id一意制約に当たったら既存を取り直す。
func (r *CartGormRepository) Create(ctx context.Context, cart model.Cart) (model.Cart, error) {
	if err := r.db.WithContext(ctx).Create(&cart).Error; err != nil {
		var existing model.Cart
		retryErr := r.db.WithContext(ctx).
			Where("member_id = ?", cart.MemberID).
			First(&existing).Error
		if retryErr == nil {
			return existing, nil
		}
		return model.Cart{}, err
	}
	return cart, nil
}
