package model

import (
	"fmt"
	"time"
)

type SellStatus string

const (
	SellStatusOnSale  SellStatus = "ON_SALE"
	SellStatusSoldOut SellStatus = "SOLD_OUT"
)

// 在庫不足。Stockはエラー発生時点の在庫数（画面表示に使う）。
type OutOfStockError struct {
	Stock int64
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("out of stock (current stock: %d)", e.Stock)
}

// 商品。価格は最小通貨単位の整数。
// CreatedByは管理者検索（登録者絞り込み）で使う。
type Product struct {
	ID         int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string     `gorm:"type:varchar(255);not null" json:"name"`
	Price      int64      `gorm:"not null" json:"price"`
	Stock      int64      `gorm:"not null" json:"stock"`
	Detail     string     `gorm:"type:text;not null" json:"detail"`
	SellStatus SellStatus `gorm:"type:varchar(20);not null;index" json:"sell_status"`
	CreatedBy  string     `gorm:"type:varchar(255)" json:"created_by"`
	CreatedAt  time.Time  `gorm:"not null;autoCreateTime;index" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// ReserveStock は注文分の在庫を引き当てる。
// 残りがマイナスになるなら在庫は変更せず OutOfStockError を返す。
// 同一商品への同時注文の整合性は呼び出し側のトランザクション（行ロック）に依存する。
func (p *Product) ReserveStock(qty int64) error {
	remaining := p.Stock - qty
	if remaining < 0 {
		return &OutOfStockError{Stock: p.Stock}
	}
	p.Stock = remaining
	return nil
}

// ReleaseStock はキャンセルで在庫を戻す。
// 戻す量は予約済み量を超えない前提（ReserveStockとの対称性）なので上限チェックはしない。
func (p *Product) ReleaseStock(qty int64) {
	p.Stock += qty
}
