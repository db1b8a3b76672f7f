package store

import (
	"testing"
	"time"

	"wedding/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestMemory_CreateAndGetGuest(t *testing.T) {
	m := NewMemory(time.Hour)

	guest := &models.Guest{Name: "王小明", Category: "家人", RSVPStatus: models.RSVPPending}
	require.NoError(t, m.CreateGuest(guest))
	assert.Equal(t, uint(1), guest.ID)
	assert.False(t, guest.CreatedAt.IsZero())

	got, err := m.GetGuest(guest.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "王小明", got.Name)
	assert.Equal(t, "pending", got.RSVPStatus)
	assert.False(t, got.PlusOne)
}

func TestMemory_GetAbsent(t *testing.T) {
	m := NewMemory(time.Hour)

	// 不存在的记录返回 nil 而不是错误
	got, err := m.GetGuest(999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemory_UpdateGuest_PartialMerge(t *testing.T) {
	m := NewMemory(time.Hour)

	guest := &models.Guest{
		Name:       "李丽",
		Category:   "朋友",
		RSVPStatus: models.RSVPPending,
		Notes:      strPtr("素食"),
	}
	require.NoError(t, m.CreateGuest(guest))

	// 只传一个字段，其余保持不变
	updated, err := m.UpdateGuest(guest.ID, map[string]interface{}{"rsvp_status": "confirmed"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "confirmed", updated.RSVPStatus)
	assert.Equal(t, "李丽", updated.Name)
	assert.Equal(t, "朋友", updated.Category)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "素食", *updated.Notes)
}

func TestMemory_UpdateGuest_NullClearsOptional(t *testing.T) {
	m := NewMemory(time.Hour)

	guest := &models.Guest{Name: "李丽", Category: "朋友", Notes: strPtr("素食")}
	require.NoError(t, m.CreateGuest(guest))

	// 显式 null 清空可选字段
	updated, err := m.UpdateGuest(guest.ID, map[string]interface{}{"notes": nil})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Nil(t, updated.Notes)
	assert.Equal(t, "李丽", updated.Name)
}

func TestMemory_UpdateTask_KeepsUntouchedFields(t *testing.T) {
	m := NewMemory(time.Hour)

	task := &models.Task{
		Title:    "预订场地",
		Priority: models.PriorityHigh,
		DueDate:  strPtr("2026-10-01"),
	}
	require.NoError(t, m.CreateTask(task))

	updated, err := m.UpdateTask(task.ID, map[string]interface{}{"priority": "low"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "low", updated.Priority)
	require.NotNil(t, updated.DueDate)
	assert.Equal(t, "2026-10-01", *updated.DueDate)
	assert.Equal(t, "预订场地", updated.Title)
}

func TestMemory_CreateAppointment_KeepsExplicitReminderFalse(t *testing.T) {
	m := NewMemory(time.Hour)

	appt := &models.Appointment{Title: "试妆", Date: "2026-09-15", Time: "14:00", Reminder: false}
	require.NoError(t, m.CreateAppointment(appt))

	got, err := m.GetAppointment(appt.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Reminder)
}

func TestMemory_Update_TypeErrorLeavesRecordUnchanged(t *testing.T) {
	m := NewMemory(time.Hour)

	guest := &models.Guest{Name: "李丽", Category: "朋友"}
	require.NoError(t, m.CreateGuest(guest))

	// name 合法、plus_one 类型错误：整个补丁失败，前面的字段也不落盘
	_, err := m.UpdateGuest(guest.ID, map[string]interface{}{
		"name":     "改了",
		"plus_one": "不是布尔",
	})
	require.Error(t, err)

	got, err := m.GetGuest(guest.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "李丽", got.Name)
	assert.False(t, got.PlusOne)
}

func TestMemory_UpdateAbsent(t *testing.T) {
	m := NewMemory(time.Hour)

	updated, err := m.UpdateGuest(42, map[string]interface{}{"name": "x"})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestMemory_DeleteGuest(t *testing.T) {
	m := NewMemory(time.Hour)

	guest := &models.Guest{Name: "张三", Category: "同事"}
	require.NoError(t, m.CreateGuest(guest))

	ok, err := m.DeleteGuest(guest.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := m.GetGuest(guest.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// 重复删除返回 false
	ok, err = m.DeleteGuest(guest.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory_IDNotReused(t *testing.T) {
	m := NewMemory(time.Hour)

	g1 := &models.Guest{Name: "一号", Category: "家人"}
	require.NoError(t, m.CreateGuest(g1))
	ok, err := m.DeleteGuest(g1.ID)
	require.NoError(t, err)
	require.True(t, ok)

	// 删除后 ID 不复用
	g2 := &models.Guest{Name: "二号", Category: "家人"}
	require.NoError(t, m.CreateGuest(g2))
	assert.Greater(t, g2.ID, g1.ID)
}

func TestMemory_ListInsertionOrder(t *testing.T) {
	m := NewMemory(time.Hour)

	for _, name := range []string{"甲", "乙", "丙"} {
		require.NoError(t, m.CreateGuest(&models.Guest{Name: name, Category: "朋友"}))
	}

	guests, err := m.ListGuests()
	require.NoError(t, err)
	require.Len(t, guests, 3)
	assert.Equal(t, "甲", guests[0].Name)
	assert.Equal(t, "乙", guests[1].Name)
	assert.Equal(t, "丙", guests[2].Name)
}

func TestMemory_ListEmpty(t *testing.T) {
	m := NewMemory(time.Hour)

	guests, err := m.ListGuests()
	require.NoError(t, err)
	assert.NotNil(t, guests)
	assert.Len(t, guests, 0)
}

func TestMemory_ListReturnsCopies(t *testing.T) {
	m := NewMemory(time.Hour)
	require.NoError(t, m.CreateGuest(&models.Guest{Name: "甲", Category: "朋友"}))

	guests, err := m.ListGuests()
	require.NoError(t, err)
	guests[0].Name = "改了"

	got, err := m.GetGuest(1)
	require.NoError(t, err)
	assert.Equal(t, "甲", got.Name)
}

func TestMemory_BudgetItem_NullableVendor(t *testing.T) {
	m := NewMemory(time.Hour)

	vendorID := uint(7)
	item := &models.BudgetItem{
		Category:        "场地",
		Description:     "酒店宴会厅",
		EstimatedAmount: 50000,
		VendorID:        &vendorID,
	}
	require.NoError(t, m.CreateBudgetItem(item))

	// null 解除供应商关联
	updated, err := m.UpdateBudgetItem(item.ID, map[string]interface{}{"vendor_id": nil})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Nil(t, updated.VendorID)

	// 重新关联
	updated, err = m.UpdateBudgetItem(item.ID, map[string]interface{}{"vendor_id": uint(3)})
	require.NoError(t, err)
	require.NotNil(t, updated.VendorID)
	assert.Equal(t, uint(3), *updated.VendorID)
}

func TestMemory_SettingsByUser(t *testing.T) {
	m := NewMemory(time.Hour)

	require.NoError(t, m.CreateSettings(&models.UserSettings{UserID: 5}))

	got, err := m.GetSettingsByUser(5)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.IsPremium)

	updated, err := m.UpdateSettingsByUser(5, map[string]interface{}{
		"couple_names": "小明 & 小红",
		"is_premium":   true,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.NotNil(t, updated.CoupleNames)
	assert.Equal(t, "小明 & 小红", *updated.CoupleNames)
	assert.True(t, updated.IsPremium)

	// 不存在的用户
	absent, err := m.UpdateSettingsByUser(99, map[string]interface{}{"is_premium": true})
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestMemorySessions_CreateAndGet(t *testing.T) {
	m := NewMemory(time.Hour)

	sess, err := m.Sessions().Create(1)
	require.NoError(t, err)
	assert.Len(t, sess.Token, 64)
	assert.Equal(t, uint(1), sess.UserID)

	got, err := m.Sessions().Get(sess.Token)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint(1), got.UserID)

	// 未知 token
	got, err = m.Sessions().Get("deadbeef")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemorySessions_Expiry(t *testing.T) {
	m := NewMemory(-time.Second) // 创建即过期

	sess, err := m.Sessions().Create(1)
	require.NoError(t, err)

	got, err := m.Sessions().Get(sess.Token)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemorySessions_SlidingRenewal(t *testing.T) {
	m := NewMemory(time.Hour)

	sess, err := m.Sessions().Create(1)
	require.NoError(t, err)
	firstExpiry := sess.ExpiresAt

	time.Sleep(10 * time.Millisecond)

	got, err := m.Sessions().Get(sess.Token)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.ExpiresAt.After(firstExpiry))
}

func TestMemorySessions_Delete(t *testing.T) {
	m := NewMemory(time.Hour)

	sess, err := m.Sessions().Create(1)
	require.NoError(t, err)
	require.NoError(t, m.Sessions().Delete(sess.Token))

	got, err := m.Sessions().Get(sess.Token)
	require.NoError(t, err)
	assert.Nil(t, got)

	// 删除不存在的 token 不报错
	assert.NoError(t, m.Sessions().Delete("deadbeef"))
}

func TestMemorySessions_DeleteExpired(t *testing.T) {
	m := NewMemory(-time.Second)

	_, err := m.Sessions().Create(1)
	require.NoError(t, err)
	_, err = m.Sessions().Create(2)
	require.NoError(t, err)

	n, err := m.Sessions().DeleteExpired()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = m.Sessions().DeleteExpired()
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
