package models

import (
	"time"
)

// RSVP 状态常量
const (
	RSVPPending   = "pending"
	RSVPConfirmed = "confirmed"
	RSVPDeclined  = "declined"
)

// Guest 宾客模型
type Guest struct {
	ID                  uint      `json:"id" gorm:"column:id;primaryKey"`
	Name                string    `json:"name" gorm:"column:name;size:100;not null"`
	Email               *string   `json:"email" gorm:"column:email;size:100"`
	Phone               *string   `json:"phone" gorm:"column:phone;size:30"`
	Category            string    `json:"category" gorm:"column:category;size:50;not null"` // 自由文本，如 家人/朋友/同事
	RSVPStatus          string    `json:"rsvpStatus" gorm:"column:rsvp_status;size:20;default:pending"`
	PlusOne             bool      `json:"plusOne" gorm:"column:plus_one;default:false"`
	DietaryRestrictions *string   `json:"dietaryRestrictions" gorm:"column:dietary_restrictions;size:255"`
	TableAssignment     *string   `json:"tableAssignment" gorm:"column:table_assignment;size:50"`
	MealChoice          *string   `json:"mealChoice" gorm:"column:meal_choice;size:50"`
	Notes               *string   `json:"notes" gorm:"column:notes;size:500"`
	CreatedAt           time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt           time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

// TableName 设置表名
func (Guest) TableName() string {
	return "guests"
}

// RSVPStatuses 获取所有 RSVP 状态
func RSVPStatuses() []string {
	return []string{RSVPPending, RSVPConfirmed, RSVPDeclined}
}
