package models

import (
	"time"
)

// Appointment 预约模型
// VendorID 同样是弱引用，见 BudgetItem
type Appointment struct {
	ID        uint      `json:"id" gorm:"column:id;primaryKey"`
	Title     string    `json:"title" gorm:"column:title;size:200;not null"`
	VendorID  *uint     `json:"vendorId" gorm:"column:vendor_id"`
	Date      string    `json:"date" gorm:"column:date;size:20;not null"` // 2006-01-02
	Time      string    `json:"time" gorm:"column:time;size:10;not null"` // 15:04
	Location  *string   `json:"location" gorm:"column:location;size:255"`
	Notes     *string   `json:"notes" gorm:"column:notes;size:500"`
	// 不用 gorm 的 default 标签：带默认值标签的零值字段在 INSERT 时会被
	// GORM 省略并回填默认值，导致显式传入的 false 被悄悄改成 true。
	// 创建时的默认值由 api 层显式填充。
	Reminder  bool      `json:"reminder" gorm:"column:reminder"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

// TableName 设置表名
func (Appointment) TableName() string {
	return "appointments"
}
