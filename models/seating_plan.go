package models

import (
	"time"
)

// SeatingPlan 座位安排模型（一条记录代表一桌）
// 桌名字段叫 Label，避免和 GORM 的 TableName 方法重名
type SeatingPlan struct {
	ID        uint      `json:"id" gorm:"column:id;primaryKey"`
	Label     string    `json:"tableName" gorm:"column:table_name;size:100;not null"`
	Capacity  int       `json:"capacity" gorm:"column:capacity;not null"` // 至少 1 人
	Category  *string   `json:"category" gorm:"column:category;size:50"`
	Location  *string   `json:"location" gorm:"column:location;size:100"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

// TableName 设置表名（避免与 table_name 字段混淆，固定为 seating_plans）
func (SeatingPlan) TableName() string {
	return "seating_plans"
}
