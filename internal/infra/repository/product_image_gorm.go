package repository

import (
	"context"
	"errors"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"gorm.io/gorm"
)

type ProductImageGormRepository struct {
	db *gorm.DB
}

func NewProductImageGormRepository(db *gorm.DB) *ProductImageGormRepository {
	return &ProductImageGormRepository{db: db}
}

func (r *ProductImageGormRepository) Create(ctx context.Context, img model.ProductImage) (model.ProductImage, error) {
	if err := r.db.WithContext(ctx).Create(&img).Error; err != nil {
		return model.ProductImage{}, err
	}
	return img, nil
}

func (r *ProductImageGormRepository) Update(ctx context.Context, img model.ProductImage) error {
	res := r.db.WithContext(ctx).
		Model(&model.ProductImage{}).
		Where("id = ?", img.ID).
		Updates(map[string]interface{}{
			"image_name":    img.ImageName,
			"original_name": img.OriginalName,
			"image_url":     img.ImageURL,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProductImageGormRepository) FindByID(ctx context.Context, imageID int64) (model.ProductImage, error) {
	var img model.ProductImage
	err := r.db.WithContext(ctx).Where("id = ?", imageID).First(&img).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ProductImage{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ProductImage{}, err
	}
	return img, nil
}

// 商品詳細用。登録した順で返す。
func (r *ProductImageGormRepository) ListByProductID(ctx context.Context, productID int64) ([]model.ProductImage, error) {
	var imgs []model.ProductImage
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id asc").
		Find(&imgs).Error; err != nil {
		return []model.ProductImage{}, err
	}
	return imgs, nil
}

func (r *ProductImageGormRepository) FindRepByProductID(ctx context.Context, productID int64) (model.ProductImage, error) {
	var img model.ProductImage
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND rep_image = ?", productID, true).
		First(&img).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ProductImage{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ProductImage{}, err
	}
	return img, nil
}
