package store

import (
	"errors"
	"time"

	"wedding/models"

	"gorm.io/gorm"
)

// Gorm MySQL 存储实现，ID 由数据库自增主键生成
type Gorm struct {
	db       *gorm.DB
	sessions *gormSessions
}

// NewGorm 基于已初始化的数据库连接创建存储
func NewGorm(db *gorm.DB, sessionTTL time.Duration) *Gorm {
	return &Gorm{db: db, sessions: &gormSessions{db: db, ttl: sessionTTL}}
}

// 用户

func (g *Gorm) CreateUser(u *models.User) error { return g.db.Create(u).Error }

func (g *Gorm) GetUser(id uint) (*models.User, error) {
	return getByID[models.User](g.db, id)
}

func (g *Gorm) GetUserByUsername(username string) (*models.User, error) {
	var u models.User
	err := g.db.Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// 用户婚礼设置

func (g *Gorm) CreateSettings(s *models.UserSettings) error { return g.db.Create(s).Error }

func (g *Gorm) GetSettingsByUser(userID uint) (*models.UserSettings, error) {
	var s models.UserSettings
	err := g.db.Where("user_id = ?", userID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (g *Gorm) UpdateSettingsByUser(userID uint, updates map[string]interface{}) (*models.UserSettings, error) {
	existing, err := g.GetSettingsByUser(userID)
	if existing == nil || err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := g.db.Model(existing).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return g.GetSettingsByUser(userID)
}

// 宾客

func (g *Gorm) ListGuests() ([]models.Guest, error) { return listAll[models.Guest](g.db) }
func (g *Gorm) GetGuest(id uint) (*models.Guest, error) {
	return getByID[models.Guest](g.db, id)
}
func (g *Gorm) CreateGuest(rec *models.Guest) error { return g.db.Create(rec).Error }
func (g *Gorm) UpdateGuest(id uint, updates map[string]interface{}) (*models.Guest, error) {
	return updateByID[models.Guest](g.db, id, updates)
}
func (g *Gorm) DeleteGuest(id uint) (bool, error) { return deleteByID[models.Guest](g.db, id) }

// 预算项目

func (g *Gorm) ListBudgetItems() ([]models.BudgetItem, error) {
	return listAll[models.BudgetItem](g.db)
}
func (g *Gorm) GetBudgetItem(id uint) (*models.BudgetItem, error) {
	return getByID[models.BudgetItem](g.db, id)
}
func (g *Gorm) CreateBudgetItem(rec *models.BudgetItem) error { return g.db.Create(rec).Error }
func (g *Gorm) UpdateBudgetItem(id uint, updates map[string]interface{}) (*models.BudgetItem, error) {
	return updateByID[models.BudgetItem](g.db, id, updates)
}
func (g *Gorm) DeleteBudgetItem(id uint) (bool, error) {
	return deleteByID[models.BudgetItem](g.db, id)
}

// 筹备任务

func (g *Gorm) ListTasks() ([]models.Task, error) { return listAll[models.Task](g.db) }
func (g *Gorm) GetTask(id uint) (*models.Task, error) {
	return getByID[models.Task](g.db, id)
}
func (g *Gorm) CreateTask(rec *models.Task) error { return g.db.Create(rec).Error }
func (g *Gorm) UpdateTask(id uint, updates map[string]interface{}) (*models.Task, error) {
	return updateByID[models.Task](g.db, id, updates)
}
func (g *Gorm) DeleteTask(id uint) (bool, error) { return deleteByID[models.Task](g.db, id) }

// 供应商

func (g *Gorm) ListVendors() ([]models.Vendor, error) { return listAll[models.Vendor](g.db) }
func (g *Gorm) GetVendor(id uint) (*models.Vendor, error) {
	return getByID[models.Vendor](g.db, id)
}
func (g *Gorm) CreateVendor(rec *models.Vendor) error { return g.db.Create(rec).Error }
func (g *Gorm) UpdateVendor(id uint, updates map[string]interface{}) (*models.Vendor, error) {
	return updateByID[models.Vendor](g.db, id, updates)
}
func (g *Gorm) DeleteVendor(id uint) (bool, error) { return deleteByID[models.Vendor](g.db, id) }

// 预约

func (g *Gorm) ListAppointments() ([]models.Appointment, error) {
	return listAll[models.Appointment](g.db)
}
func (g *Gorm) GetAppointment(id uint) (*models.Appointment, error) {
	return getByID[models.Appointment](g.db, id)
}
func (g *Gorm) CreateAppointment(rec *models.Appointment) error { return g.db.Create(rec).Error }
func (g *Gorm) UpdateAppointment(id uint, updates map[string]interface{}) (*models.Appointment, error) {
	return updateByID[models.Appointment](g.db, id, updates)
}
func (g *Gorm) DeleteAppointment(id uint) (bool, error) {
	return deleteByID[models.Appointment](g.db, id)
}

// 座位安排

func (g *Gorm) ListSeatingPlans() ([]models.SeatingPlan, error) {
	return listAll[models.SeatingPlan](g.db)
}
func (g *Gorm) GetSeatingPlan(id uint) (*models.SeatingPlan, error) {
	return getByID[models.SeatingPlan](g.db, id)
}
func (g *Gorm) CreateSeatingPlan(rec *models.SeatingPlan) error { return g.db.Create(rec).Error }
func (g *Gorm) UpdateSeatingPlan(id uint, updates map[string]interface{}) (*models.SeatingPlan, error) {
	return updateByID[models.SeatingPlan](g.db, id, updates)
}
func (g *Gorm) DeleteSeatingPlan(id uint) (bool, error) {
	return deleteByID[models.SeatingPlan](g.db, id)
}

// Sessions 返回会话存储
func (g *Gorm) Sessions() SessionStore { return g.sessions }

// Close 关闭底层连接池
func (g *Gorm) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// 通用 CRUD 辅助函数，不存在一律返回 (nil, nil)

func listAll[T any](db *gorm.DB) ([]T, error) {
	out := make([]T, 0)
	if err := db.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func getByID[T any](db *gorm.DB, id uint) (*T, error) {
	var rec T
	err := db.First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func updateByID[T any](db *gorm.DB, id uint, updates map[string]interface{}) (*T, error) {
	rec, err := getByID[T](db, id)
	if rec == nil || err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := db.Model(rec).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return getByID[T](db, id)
}

func deleteByID[T any](db *gorm.DB, id uint) (bool, error) {
	res := db.Delete(new(T), id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// gormSessions MySQL 会话存储
type gormSessions struct {
	db  *gorm.DB
	ttl time.Duration
}

func (s *gormSessions) Create(userID uint) (*models.Session, error) {
	token, err := models.NewSessionToken()
	if err != nil {
		return nil, err
	}
	sess := &models.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.db.Create(sess).Error; err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *gormSessions) Get(token string) (*models.Session, error) {
	var sess models.Session
	err := s.db.Where("token = ?", token).First(&sess).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !sess.IsValid() {
		s.db.Delete(&models.Session{}, "token = ?", token)
		return nil, nil
	}
	// 滑动续期
	sess.ExpiresAt = time.Now().Add(s.ttl)
	if err := s.db.Model(&models.Session{}).Where("token = ?", token).
		Update("expires_at", sess.ExpiresAt).Error; err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *gormSessions) Delete(token string) error {
	return s.db.Delete(&models.Session{}, "token = ?", token).Error
}

func (s *gormSessions) DeleteExpired() (int64, error) {
	res := s.db.Where("expires_at < ?", time.Now()).Delete(&models.Session{})
	return res.RowsAffected, res.Error
}
