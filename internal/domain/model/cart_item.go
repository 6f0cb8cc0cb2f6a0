package model

import "time"

// カート明細。(cart_id, product_id) は1行のみで、同じ商品の追加は数量加算になる。
type CartItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    int64     `gorm:"not null;index:idx_cart_product,unique" json:"cart_id"`
	ProductID int64     `gorm:"not null;index:idx_cart_product,unique" json:"product_id"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// 同じ商品を追加したとき数量を加算する。
func (ci *CartItem) AddQuantity(qty int64) {
	ci.Quantity += qty
}

func (ci *CartItem) UpdateQuantity(qty int64) {
	ci.Quantity = qty
}
