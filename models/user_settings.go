package models

import (
	"time"
)

// UserSettings 用户婚礼设置
// 每个用户一条记录，驱动前端的主题展示和高级功能开关
type UserSettings struct {
	ID           uint      `json:"id" gorm:"column:id;primaryKey"`
	UserID       uint      `json:"userId" gorm:"column:user_id;uniqueIndex;not null"`
	WeddingDate  *string   `json:"weddingDate" gorm:"column:wedding_date;size:20"`
	CoupleNames  *string   `json:"coupleNames" gorm:"column:couple_names;size:100"`
	VenueAddress *string   `json:"venueAddress" gorm:"column:venue_address;size:255"`
	Theme        *string   `json:"theme" gorm:"column:theme;size:50"`
	IsPremium    bool      `json:"isPremium" gorm:"column:is_premium;default:false"`
	CreatedAt    time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

// TableName 设置表名
func (UserSettings) TableName() string {
	return "user_settings"
}
