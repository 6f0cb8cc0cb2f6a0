package model

import "time"

// 商品画像。RepImage=true が一覧で使う代表画像（商品ごとに1枚）。
type ProductImage struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID    int64     `gorm:"not null;index" json:"product_id"`
	ImageName    string    `gorm:"type:varchar(255)" json:"image_name"`
	OriginalName string    `gorm:"type:varchar(255)" json:"original_name"`
	ImageURL     string    `gorm:"type:varchar(255)" json:"image_url"`
	RepImage     bool      `gorm:"not null;default:false" json:"rep_image"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// アップロード結果を反映する。
func (img *ProductImage) UpdateImage(originalName, imageName, imageURL string) {
	img.OriginalName = originalName
	img.ImageName = imageName
	img.ImageURL = imageURL
}
