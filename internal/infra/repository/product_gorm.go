package repository

import (
	"context"
	"errors"
	"time"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

func (r *ProductGormRepository) FindByID(ctx context.Context, productID int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("id = ?", productID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 在庫・価格などの変更をまとめて保存。
func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":        p.Name,
			"price":       p.Price,
			"stock":       p.Stock,
			"detail":      p.Detail,
			"sell_status": p.SellStatus,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 検索条件をクエリに変換する場所はここだけ。
func applySearchFilter(q *gorm.DB, f repo.ProductSearchFilter) *gorm.DB {
	switch f.RegisteredWithin {
	case repo.RegisteredDay:
		q = q.Where("created_at >= ?", time.Now().AddDate(0, 0, -1))
	case repo.RegisteredWeek:
		q = q.Where("created_at >= ?", time.Now().AddDate(0, 0, -7))
	case repo.RegisteredMonth:
		q = q.Where("created_at >= ?", time.Now().AddDate(0, -1, 0))
	case repo.RegisteredHalfYear:
		q = q.Where("created_at >= ?", time.Now().AddDate(0, -6, 0))
	}

	if f.SellStatus != nil {
		q = q.Where("sell_status = ?", *f.SellStatus)
	}

	if f.Query != "" {
		switch f.SearchBy {
		case "name":
			q = q.Where("name LIKE ?", "%"+f.Query+"%")
		case "created_by":
			q = q.Where("created_by LIKE ?", "%"+f.Query+"%")
		}
	}

	return q
}

func (r *ProductGormRepository) ListAdmin(ctx context.Context, f repo.ProductSearchFilter) ([]model.Product, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}

	q := applySearchFilter(r.db.WithContext(ctx).Model(&model.Product{}), f)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return []model.Product{}, 0, err
	}

	var items []model.Product
	offset := (f.Page - 1) * f.Limit
	if err := q.Order("id desc").Limit(f.Limit).Offset(offset).Find(&items).Error; err != nil {
		return []model.Product{}, 0, err
	}

	return items, total, nil
}

// ストア一覧。代表画像だけをjoinして1商品1行にする。
func (r *ProductGormRepository) ListMain(ctx context.Context, mq repo.MainProductQuery) ([]repo.MainProduct, int64, error) {
	if mq.Page <= 0 {
		mq.Page = 1
	}
	if mq.Limit <= 0 || mq.Limit > 100 {
		mq.Limit = 20
	}

	q := r.db.WithContext(ctx).
		Table("products").
		Joins("join product_images on product_images.product_id = products.id").
		Where("product_images.rep_image = ?", true)

	if mq.Query != "" {
		q = q.Where("products.name LIKE ?", "%"+mq.Query+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return []repo.MainProduct{}, 0, err
	}

	var items []repo.MainProduct
	offset := (mq.Page - 1) * mq.Limit
	err := q.
		Select("products.id, products.name, products.detail, product_images.image_url, products.price").
		Order("products.id desc").
		Limit(mq.Limit).
		Offset(offset).
		Scan(&items).Error
	if err != nil {
		return []repo.MainProduct{}, 0, err
	}

	return items, total, nil
}
