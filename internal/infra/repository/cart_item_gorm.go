package repository

import (
	"context"
	"errors"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartItemGormRepository struct {
	db *gorm.DB
}

func NewCartItemGormRepository(db *gorm.DB) *CartItemGormRepository {
	return &CartItemGormRepository{db: db}
}

func (r *CartItemGormRepository) Create(ctx context.Context, item model.CartItem) (model.CartItem, error) {
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		return model.CartItem{}, err
	}
	return item, nil
}

func (r *CartItemGormRepository) FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error) {
	var item model.CartItem
	err := r.db.WithContext(ctx).Where("id = ?", cartItemID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CartItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.CartItem{}, err
	}
	return item, nil
}

// 同じ商品の明細を探す（加算のため行ロックを取る）。
func (r *CartItemGormRepository) FindByCartAndProduct(ctx context.Context, cartID int64, productID int64) (model.CartItem, error) {
	var item model.CartItem
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CartItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.CartItem{}, err
	}
	return item, nil
}

// 数量変更の保存。
func (r *CartItemGormRepository) Update(ctx context.Context, item model.CartItem) error {
	res := r.db.WithContext(ctx).
		Model(&model.CartItem{}).
		Where("id = ?", item.ID).
		Update("quantity", item.Quantity)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *CartItemGormRepository) DeleteByID(ctx context.Context, cartItemID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.CartItem{}, cartItemID)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// カート一覧。商品と代表画像をjoinして、追加が新しい順で返す。
func (r *CartItemGormRepository) ListDetailsByCartID(ctx context.Context, cartID int64) ([]repo.CartDetail, error) {
	var details []repo.CartDetail

	err := r.db.WithContext(ctx).
		Table("cart_items").
		Select("cart_items.id as cart_item_id, products.id as product_id, products.name, products.price, cart_items.quantity, product_images.image_url").
		Joins("join products on products.id = cart_items.product_id").
		Joins("left join product_images on product_images.product_id = products.id AND product_images.rep_image = ?", true).
		Where("cart_items.cart_id = ?", cartID).
		Order("cart_items.id desc").
		Scan(&details).Error
	if err != nil {
		return []repo.CartDetail{}, err
	}

	return details, nil
}

// cartItemが、その会員のカートに属しているかを判定
func (r *CartItemGormRepository) IsOwnedByMember(ctx context.Context, cartItemID int64, email string) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Table("cart_items").
		Joins("join carts on carts.id = cart_items.cart_id").
		Joins("join members on members.id = carts.member_id").
		Where("cart_items.id = ? AND members.email = ?", cartItemID, email).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}
