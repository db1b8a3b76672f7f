package models

import (
	"time"
)

// 任务优先级常量
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task 筹备任务模型
type Task struct {
	ID          uint      `json:"id" gorm:"column:id;primaryKey"`
	Title       string    `json:"title" gorm:"column:title;size:200;not null"`
	Description *string   `json:"description" gorm:"column:description;size:500"`
	DueDate     *string   `json:"dueDate" gorm:"column:due_date;size:20"`
	Completed   bool      `json:"completed" gorm:"column:completed;default:false"`
	Priority    string    `json:"priority" gorm:"column:priority;size:20;default:medium"`
	Category    *string   `json:"category" gorm:"column:category;size:50"`
	AssignedTo  *string   `json:"assignedTo" gorm:"column:assigned_to;size:100"`
	CreatedAt   time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

// TableName 设置表名
func (Task) TableName() string {
	return "tasks"
}

// Priorities 获取所有优先级
func Priorities() []string {
	return []string{PriorityLow, PriorityMedium, PriorityHigh}
}
