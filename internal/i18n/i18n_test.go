package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTr_KnownKey(t *testing.T) {
	m := NewManager(English)
	assert.Equal(t, "Password cannot be empty", m.Tr("password_empty_error"))

	zh := NewManager(Chinese)
	assert.Equal(t, "密码不能为空", zh.Tr("password_empty_error"))
}

func TestTr_FallsBackToEnglishThenKey(t *testing.T) {
	zh := NewManager(Chinese)
	assert.Equal(t, "no_such_key_anywhere", zh.Tr("no_such_key_anywhere"))

	m := NewManager(Language("fr"))
	assert.Equal(t, "Login", m.Tr("login_button"), "unknown language must fall back to English")
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, Chinese, ParseLanguage("zh-CN"))
	assert.Equal(t, Chinese, ParseLanguage("zh"))
	assert.Equal(t, English, ParseLanguage("en"))
	assert.Equal(t, English, ParseLanguage(""))
	assert.Equal(t, English, ParseLanguage("garbage"))
}

func TestTables_ChineseCoversEnglishKeys(t *testing.T) {
	for key := range translations[English] {
		_, ok := translations[Chinese][key]
		assert.True(t, ok, "missing Chinese translation for %q", key)
	}
}
