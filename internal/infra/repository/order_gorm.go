package repository

import (
	"context"
	"errors"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// 注文と明細をまとめて保存（明細は注文の所有物なのでここ以外では作らない）。
func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		return 0, err
	}
	return order.ID, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", orderID).
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) ListByMemberID(ctx context.Context, memberID int64, page int, limit int) ([]model.Order, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("member_id = ?", memberID).
		Count(&total).Error; err != nil {
		return []model.Order{}, 0, err
	}

	var orders []model.Order
	offset := (page - 1) * limit
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("member_id = ?", memberID).
		Order("id desc").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error
	if err != nil {
		return []model.Order{}, 0, err
	}

	return orders, total, nil
}

func (r *OrderGormRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("status", status)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
