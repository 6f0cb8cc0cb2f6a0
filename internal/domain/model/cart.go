package model

import "time"

// カート。会員1人につき1つ、最初の追加時に作られる。
type Cart struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	MemberID  int64     `gorm:"not null;uniqueIndex" json:"member_id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
