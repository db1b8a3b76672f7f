package models

import (
	"time"
)

const (
	// RoleUser 普通用户
	RoleUser = "user"
	// RoleAdmin 管理员
	RoleAdmin = "admin"
)

// User 用户模型
type User struct {
	ID        uint      `json:"id" gorm:"column:id;primaryKey"`
	Username  string    `json:"username" gorm:"column:username;uniqueIndex;size:50;not null"`
	Password  string    `json:"-" gorm:"column:password;size:255;not null"` // scrypt 哈希，格式 hash:salt
	Email     *string   `json:"email" gorm:"column:email;size:100"`
	FullName  *string   `json:"fullName" gorm:"column:full_name;size:100"`
	Role      string    `json:"role" gorm:"column:role;size:20;default:user"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

// TableName 设置表名
func (User) TableName() string {
	return "users"
}
