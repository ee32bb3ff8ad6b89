package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInviteCode(t *testing.T) {
	code, err := GenerateInviteCode()
	require.NoError(t, err)

	assert.Len(t, code, InviteCodeLength)
	for _, r := range code {
		assert.True(t, r >= 'A' && r <= 'Z', "unexpected rune %q in code %s", r, code)
	}
}

func TestGenerateInviteCodeUniqueness(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		code, err := GenerateInviteCode()
		require.NoError(t, err)

		_, dup := seen[code]
		require.False(t, dup, "duplicate code %s", code)
		seen[code] = struct{}{}
	}
}

func TestDayName(t *testing.T) {
	assert.Equal(t, "Понедельник", DayName(Monday))
	assert.Equal(t, "Суббота", DayName(Saturday))
	assert.Equal(t, "Воскресенье", DayName(6))
	assert.Equal(t, "Неизвестный день", DayName(-1))
	assert.Equal(t, "Неизвестный день", DayName(7))
}
