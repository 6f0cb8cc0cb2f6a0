package model

import "time"

// 注文明細。OrderPriceは注文時点の単価スナップショット
// （後から商品価格が変わっても過去の注文金額は変わらない）。
type OrderItem struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID    int64     `gorm:"not null;index" json:"order_id"`
	ProductID  int64     `gorm:"not null;index" json:"product_id"`
	OrderPrice int64     `gorm:"not null" json:"order_price"`
	Quantity   int64     `gorm:"not null" json:"quantity"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

// NewOrderItem は商品の在庫を引き当ててから明細を作る。
// 在庫不足なら OutOfStockError を返し、明細は作られない。
func NewOrderItem(product *Product, qty int64) (OrderItem, error) {
	if err := product.ReserveStock(qty); err != nil {
		return OrderItem{}, err
	}
	return OrderItem{
		ProductID:  product.ID,
		OrderPrice: product.Price,
		Quantity:   qty,
	}, nil
}

// 明細の小計。
func (oi *OrderItem) TotalPrice() int64 {
	return oi.OrderPrice * oi.Quantity
}
