// Package store 提供统一的存储抽象，内存实现用于开发和测试，
// MySQL 实现用于生产，两者可以互换而无需改动任何调用方。
package store

import (
	"wedding/models"
)

// Store 实体存储接口
//
// 约定：
//   - Get*/Update* 在记录不存在时返回 (nil, nil)，不视为错误；
//   - Delete* 返回记录是否存在并被删除；
//   - Update* 接收以列名为键的补丁：键存在（即使值为 nil）则覆盖，
//     键不存在则保留原值，nil 会把可空字段清为 NULL；
//   - 删除不做级联，弱引用（如 vendor_id）允许悬空。
type Store interface {
	// 用户
	CreateUser(u *models.User) error
	GetUser(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)

	// 用户婚礼设置（每用户一条）
	CreateSettings(s *models.UserSettings) error
	GetSettingsByUser(userID uint) (*models.UserSettings, error)
	UpdateSettingsByUser(userID uint, updates map[string]interface{}) (*models.UserSettings, error)

	// 宾客
	ListGuests() ([]models.Guest, error)
	GetGuest(id uint) (*models.Guest, error)
	CreateGuest(g *models.Guest) error
	UpdateGuest(id uint, updates map[string]interface{}) (*models.Guest, error)
	DeleteGuest(id uint) (bool, error)

	// 预算项目
	ListBudgetItems() ([]models.BudgetItem, error)
	GetBudgetItem(id uint) (*models.BudgetItem, error)
	CreateBudgetItem(b *models.BudgetItem) error
	UpdateBudgetItem(id uint, updates map[string]interface{}) (*models.BudgetItem, error)
	DeleteBudgetItem(id uint) (bool, error)

	// 筹备任务
	ListTasks() ([]models.Task, error)
	GetTask(id uint) (*models.Task, error)
	CreateTask(t *models.Task) error
	UpdateTask(id uint, updates map[string]interface{}) (*models.Task, error)
	DeleteTask(id uint) (bool, error)

	// 供应商
	ListVendors() ([]models.Vendor, error)
	GetVendor(id uint) (*models.Vendor, error)
	CreateVendor(v *models.Vendor) error
	UpdateVendor(id uint, updates map[string]interface{}) (*models.Vendor, error)
	DeleteVendor(id uint) (bool, error)

	// 预约
	ListAppointments() ([]models.Appointment, error)
	GetAppointment(id uint) (*models.Appointment, error)
	CreateAppointment(a *models.Appointment) error
	UpdateAppointment(id uint, updates map[string]interface{}) (*models.Appointment, error)
	DeleteAppointment(id uint) (bool, error)

	// 座位安排
	ListSeatingPlans() ([]models.SeatingPlan, error)
	GetSeatingPlan(id uint) (*models.SeatingPlan, error)
	CreateSeatingPlan(p *models.SeatingPlan) error
	UpdateSeatingPlan(id uint, updates map[string]interface{}) (*models.SeatingPlan, error)
	DeleteSeatingPlan(id uint) (bool, error)

	// Sessions 返回会话存储能力
	Sessions() SessionStore

	// Close 释放底层资源
	Close() error
}

// SessionStore 会话存储接口
// 会话的 TTL 在构造存储时指定，超过 TTL 未活动即过期，由定时清理任务回收
type SessionStore interface {
	// Create 为用户签发新会话
	Create(userID uint) (*models.Session, error)
	// Get 按 token 查找会话，不存在或已过期返回 (nil, nil)；
	// 命中时滑动续期
	Get(token string) (*models.Session, error)
	// Delete 销毁会话（登出）
	Delete(token string) error
	// DeleteExpired 清理所有过期会话，返回清理数量
	DeleteExpired() (int64, error)
}
