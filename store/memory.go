package store

import (
	"reflect"
	"sync"
	"time"

	"wedding/models"
)

// Memory 内存存储实现
// 各集合以 map 存放记录，ID 从 1 开始单调递增，删除后不复用；
// 列表按插入顺序返回。用于开发环境和测试。
type Memory struct {
	users        *collection[models.User]
	settings     *collection[models.UserSettings]
	guests       *collection[models.Guest]
	budgetItems  *collection[models.BudgetItem]
	tasks        *collection[models.Task]
	vendors      *collection[models.Vendor]
	appointments *collection[models.Appointment]
	seatingPlans *collection[models.SeatingPlan]
	sessions     *memorySessions
}

// NewMemory 创建内存存储，sessionTTL 为会话不活动过期时间
func NewMemory(sessionTTL time.Duration) *Memory {
	return &Memory{
		users:        newCollection[models.User](),
		settings:     newCollection[models.UserSettings](),
		guests:       newCollection[models.Guest](),
		budgetItems:  newCollection[models.BudgetItem](),
		tasks:        newCollection[models.Task](),
		vendors:      newCollection[models.Vendor](),
		appointments: newCollection[models.Appointment](),
		seatingPlans: newCollection[models.SeatingPlan](),
		sessions:     newMemorySessions(sessionTTL),
	}
}

// 用户

func (m *Memory) CreateUser(u *models.User) error { return m.users.create(u) }

func (m *Memory) GetUser(id uint) (*models.User, error) { return m.users.get(id), nil }

func (m *Memory) GetUserByUsername(username string) (*models.User, error) {
	return m.users.find(func(u *models.User) bool { return u.Username == username }), nil
}

// 用户婚礼设置

func (m *Memory) CreateSettings(s *models.UserSettings) error { return m.settings.create(s) }

func (m *Memory) GetSettingsByUser(userID uint) (*models.UserSettings, error) {
	return m.settings.find(func(s *models.UserSettings) bool { return s.UserID == userID }), nil
}

func (m *Memory) UpdateSettingsByUser(userID uint, updates map[string]interface{}) (*models.UserSettings, error) {
	existing := m.settings.find(func(s *models.UserSettings) bool { return s.UserID == userID })
	if existing == nil {
		return nil, nil
	}
	return m.settings.update(existing.ID, updates)
}

// 宾客

func (m *Memory) ListGuests() ([]models.Guest, error)  { return m.guests.list(), nil }
func (m *Memory) GetGuest(id uint) (*models.Guest, error) { return m.guests.get(id), nil }
func (m *Memory) CreateGuest(g *models.Guest) error    { return m.guests.create(g) }
func (m *Memory) UpdateGuest(id uint, updates map[string]interface{}) (*models.Guest, error) {
	return m.guests.update(id, updates)
}
func (m *Memory) DeleteGuest(id uint) (bool, error) { return m.guests.delete(id), nil }

// 预算项目

func (m *Memory) ListBudgetItems() ([]models.BudgetItem, error) { return m.budgetItems.list(), nil }
func (m *Memory) GetBudgetItem(id uint) (*models.BudgetItem, error) {
	return m.budgetItems.get(id), nil
}
func (m *Memory) CreateBudgetItem(b *models.BudgetItem) error { return m.budgetItems.create(b) }
func (m *Memory) UpdateBudgetItem(id uint, updates map[string]interface{}) (*models.BudgetItem, error) {
	return m.budgetItems.update(id, updates)
}
func (m *Memory) DeleteBudgetItem(id uint) (bool, error) { return m.budgetItems.delete(id), nil }

// 筹备任务

func (m *Memory) ListTasks() ([]models.Task, error)  { return m.tasks.list(), nil }
func (m *Memory) GetTask(id uint) (*models.Task, error) { return m.tasks.get(id), nil }
func (m *Memory) CreateTask(t *models.Task) error    { return m.tasks.create(t) }
func (m *Memory) UpdateTask(id uint, updates map[string]interface{}) (*models.Task, error) {
	return m.tasks.update(id, updates)
}
func (m *Memory) DeleteTask(id uint) (bool, error) { return m.tasks.delete(id), nil }

// 供应商

func (m *Memory) ListVendors() ([]models.Vendor, error)  { return m.vendors.list(), nil }
func (m *Memory) GetVendor(id uint) (*models.Vendor, error) { return m.vendors.get(id), nil }
func (m *Memory) CreateVendor(v *models.Vendor) error    { return m.vendors.create(v) }
func (m *Memory) UpdateVendor(id uint, updates map[string]interface{}) (*models.Vendor, error) {
	return m.vendors.update(id, updates)
}
func (m *Memory) DeleteVendor(id uint) (bool, error) { return m.vendors.delete(id), nil }

// 预约

func (m *Memory) ListAppointments() ([]models.Appointment, error) {
	return m.appointments.list(), nil
}
func (m *Memory) GetAppointment(id uint) (*models.Appointment, error) {
	return m.appointments.get(id), nil
}
func (m *Memory) CreateAppointment(a *models.Appointment) error { return m.appointments.create(a) }
func (m *Memory) UpdateAppointment(id uint, updates map[string]interface{}) (*models.Appointment, error) {
	return m.appointments.update(id, updates)
}
func (m *Memory) DeleteAppointment(id uint) (bool, error) { return m.appointments.delete(id), nil }

// 座位安排

func (m *Memory) ListSeatingPlans() ([]models.SeatingPlan, error) {
	return m.seatingPlans.list(), nil
}
func (m *Memory) GetSeatingPlan(id uint) (*models.SeatingPlan, error) {
	return m.seatingPlans.get(id), nil
}
func (m *Memory) CreateSeatingPlan(p *models.SeatingPlan) error { return m.seatingPlans.create(p) }
func (m *Memory) UpdateSeatingPlan(id uint, updates map[string]interface{}) (*models.SeatingPlan, error) {
	return m.seatingPlans.update(id, updates)
}
func (m *Memory) DeleteSeatingPlan(id uint) (bool, error) { return m.seatingPlans.delete(id), nil }

// Sessions 返回会话存储
func (m *Memory) Sessions() SessionStore { return m.sessions }

// Close 内存存储无资源可释放
func (m *Memory) Close() error { return nil }

// collection 单个实体的内存集合
type collection[T any] struct {
	mu     sync.RWMutex
	items  map[uint]*T
	order  []uint // 插入顺序
	nextID uint
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{items: make(map[uint]*T), nextID: 1}
}

func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.items[id])
	}
	return out
}

func (c *collection[T]) get(id uint) *T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.items[id]
	if !ok {
		return nil
	}
	cp := *rec
	return &cp
}

func (c *collection[T]) find(match func(*T) bool) *T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, id := range c.order {
		if match(c.items[id]) {
			cp := *c.items[id]
			return &cp
		}
	}
	return nil
}

func (c *collection[T]) create(rec *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	setRecordID(rec, id)
	now := time.Now()
	setTimeField(rec, "CreatedAt", now)
	setTimeField(rec, "UpdatedAt", now)
	cp := *rec
	c.items[id] = &cp
	c.order = append(c.order, id)
	return nil
}

func (c *collection[T]) update(id uint, updates map[string]interface{}) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.items[id]
	if !ok {
		return nil, nil
	}
	// 先在副本上合并，全部字段成功后再替换，类型错误不会留下半更新的记录
	cp := *rec
	if err := applyPatch(&cp, updates); err != nil {
		return nil, err
	}
	setTimeField(&cp, "UpdatedAt", time.Now())
	c.items[id] = &cp
	out := cp
	return &out, nil
}

func (c *collection[T]) delete(id uint) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// setTimeField 写入时间字段（字段不存在时忽略）
func setTimeField(rec interface{}, name string, t time.Time) {
	f := reflect.ValueOf(rec).Elem().FieldByName(name)
	if f.IsValid() && f.CanSet() && f.Type() == reflect.TypeOf(time.Time{}) {
		f.Set(reflect.ValueOf(t))
	}
}

// memorySessions 内存会话存储
type memorySessions struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
	ttl      time.Duration
}

func newMemorySessions(ttl time.Duration) *memorySessions {
	return &memorySessions{sessions: make(map[string]*models.Session), ttl: ttl}
}

func (s *memorySessions) Create(userID uint) (*models.Session, error) {
	token, err := models.NewSessionToken()
	if err != nil {
		return nil, err
	}
	sess := &models.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.ttl),
		CreatedAt: time.Now(),
	}
	s.mu.Lock()
	s.sessions[token] = sess
	s.mu.Unlock()
	cp := *sess
	return &cp, nil
}

func (s *memorySessions) Get(token string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return nil, nil
	}
	if !sess.IsValid() {
		delete(s.sessions, token)
		return nil, nil
	}
	// 滑动续期
	sess.ExpiresAt = time.Now().Add(s.ttl)
	cp := *sess
	return &cp, nil
}

func (s *memorySessions) Delete(token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

func (s *memorySessions) DeleteExpired() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for token, sess := range s.sessions {
		if !sess.IsValid() {
			delete(s.sessions, token)
			n++
		}
	}
	return n, nil
}
