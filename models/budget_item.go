package models

import (
	"time"
)

// BudgetItem 预算项目模型
// VendorID 是对 Vendor 的弱引用：删除供应商不会级联清理这里的引用
type BudgetItem struct {
	ID              uint      `json:"id" gorm:"column:id;primaryKey"`
	Category        string    `json:"category" gorm:"column:category;size:50;not null"`
	Description     string    `json:"description" gorm:"column:description;size:255;not null"`
	EstimatedAmount float64   `json:"estimatedAmount" gorm:"column:estimated_amount;type:decimal(10,2);not null"`
	ActualAmount    *float64  `json:"actualAmount" gorm:"column:actual_amount;type:decimal(10,2)"`
	Paid            bool      `json:"paid" gorm:"column:paid;default:false"`
	DueDate         *string   `json:"dueDate" gorm:"column:due_date;size:20"`
	VendorID        *uint     `json:"vendorId" gorm:"column:vendor_id"`
	ReceiptImage    *string   `json:"receiptImage" gorm:"column:receipt_image;size:255"`
	CreatedAt       time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt       time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

// TableName 设置表名
func (BudgetItem) TableName() string {
	return "budget_items"
}
