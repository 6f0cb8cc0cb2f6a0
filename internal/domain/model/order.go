package model

import (
	"errors"
	"time"
)

type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "PLACED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

var ErrOrderNotCancellable = errors.New("order is not cancellable")

// 注文。明細（Items）は注文が所有し、注文と一緒に作成・削除される。
// 明細側はOrderIDしか持たない（相互参照にしない）。
type Order struct {
	ID        int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	MemberID  int64       `gorm:"not null;index" json:"member_id"`
	OrderDate time.Time   `gorm:"not null" json:"order_date"`
	Status    OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// NewOrder は明細付きの注文をPLACEDで作る。在庫の引き当ては明細作成側で済んでいる。
func NewOrder(memberID int64, items []OrderItem) Order {
	return Order{
		MemberID:  memberID,
		OrderDate: time.Now(),
		Status:    OrderStatusPlaced,
		Items:     items,
	}
}

// TotalPrice は明細小計の合計。副作用なし。
func (o *Order) TotalPrice() int64 {
	var total int64 = 0
	for i := range o.Items {
		total += o.Items[i].TotalPrice()
	}
	return total
}

// Cancel は注文をキャンセル状態にする。
// PLACED以外からのキャンセルは拒否する（二重キャンセルで在庫が二重に戻るのを防ぐ）。
// 在庫の戻しは呼び出し側が明細ごとに行う。
func (o *Order) Cancel() error {
	if o.Status != OrderStatusPlaced {
		return ErrOrderNotCancellable
	}
	o.Status = OrderStatusCancelled
	return nil
}
