package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawBody(t *testing.T, body string) map[string]json.RawMessage {
	t.Helper()
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	return raw
}

var testPatchFields = []patchField{
	{json: "name", column: "name", kind: patchString, required: true},
	{json: "notes", column: "notes", kind: patchString},
	{json: "status", column: "status", kind: patchString, enum: []string{"pending", "confirmed"}},
	{json: "active", column: "active", kind: patchBool},
	{json: "amount", column: "amount", kind: patchFloat},
	{json: "capacity", column: "capacity", kind: patchInt, min: intPtr(1)},
	{json: "vendorId", column: "vendor_id", kind: patchUint},
}

func TestParsePatch_AbsentVsNull(t *testing.T) {
	// 缺失的字段不进补丁
	updates, details := parsePatch(rawBody(t, `{"name":"新名字"}`), testPatchFields)
	require.Empty(t, details)
	assert.Equal(t, map[string]interface{}{"name": "新名字"}, updates)
	_, touched := updates["notes"]
	assert.False(t, touched)

	// 显式 null 进补丁且值为 nil
	updates, details = parsePatch(rawBody(t, `{"notes":null}`), testPatchFields)
	require.Empty(t, details)
	require.Contains(t, updates, "notes")
	assert.Nil(t, updates["notes"])
}

func TestParsePatch_RequiredRejectsNull(t *testing.T) {
	updates, details := parsePatch(rawBody(t, `{"name":null}`), testPatchFields)
	assert.Empty(t, updates)
	assert.Contains(t, details, "name")

	// 必填字段也不允许空串
	_, details = parsePatch(rawBody(t, `{"name":"  "}`), testPatchFields)
	assert.Contains(t, details, "name")
}

func TestParsePatch_TypeErrors(t *testing.T) {
	_, details := parsePatch(rawBody(t, `{"active":"yes"}`), testPatchFields)
	assert.Contains(t, details, "active")

	_, details = parsePatch(rawBody(t, `{"amount":"abc"}`), testPatchFields)
	assert.Contains(t, details, "amount")

	_, details = parsePatch(rawBody(t, `{"vendorId":-3}`), testPatchFields)
	assert.Contains(t, details, "vendorId")
}

func TestParsePatch_Enum(t *testing.T) {
	updates, details := parsePatch(rawBody(t, `{"status":"confirmed"}`), testPatchFields)
	require.Empty(t, details)
	assert.Equal(t, "confirmed", updates["status"])

	_, details = parsePatch(rawBody(t, `{"status":"maybe"}`), testPatchFields)
	assert.Contains(t, details, "status")
}

func TestParsePatch_Min(t *testing.T) {
	updates, details := parsePatch(rawBody(t, `{"capacity":8}`), testPatchFields)
	require.Empty(t, details)
	assert.Equal(t, 8, updates["capacity"])

	_, details = parsePatch(rawBody(t, `{"capacity":0}`), testPatchFields)
	assert.Contains(t, details, "capacity")
}

func TestParsePatch_UnknownFieldsIgnored(t *testing.T) {
	updates, details := parsePatch(rawBody(t, `{"name":"新名字","id":99,"createdAt":"2020-01-01"}`), testPatchFields)
	require.Empty(t, details)
	// 未声明的字段（包括 id 和时间戳）直接忽略
	assert.Equal(t, map[string]interface{}{"name": "新名字"}, updates)
}

func TestParsePatch_MultipleErrorsCollected(t *testing.T) {
	_, details := parsePatch(rawBody(t, `{"name":null,"status":"maybe","capacity":0}`), testPatchFields)
	assert.Len(t, details, 3)
}
