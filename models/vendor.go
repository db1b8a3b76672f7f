package models

import (
	"time"
)

// Vendor 供应商模型
type Vendor struct {
	ID           uint      `json:"id" gorm:"column:id;primaryKey"`
	Name         string    `json:"name" gorm:"column:name;size:100;not null"`
	Category     string    `json:"category" gorm:"column:category;size:50;not null"` // 如 摄影/花艺/婚纱/司仪
	ContactName  *string   `json:"contactName" gorm:"column:contact_name;size:100"`
	Phone        *string   `json:"phone" gorm:"column:phone;size:30"`
	Email        *string   `json:"email" gorm:"column:email;size:100"`
	Website      *string   `json:"website" gorm:"column:website;size:255"`
	Address      *string   `json:"address" gorm:"column:address;size:255"`
	Notes        *string   `json:"notes" gorm:"column:notes;size:500"`
	ContractFile *string   `json:"contractFile" gorm:"column:contract_file;size:255"`
	CreatedAt    time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

// TableName 设置表名
func (Vendor) TableName() string {
	return "vendors"
}
