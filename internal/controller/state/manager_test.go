package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManagerStateLifecycle(t *testing.T) {
	sm := NewManager()
	key := Key{ChatID: 10, UserID: 20}

	assert.Equal(t, StateNone, sm.GetState(key))

	sm.SetState(key, StateClassGrade)
	assert.Equal(t, StateClassGrade, sm.GetState(key))

	sm.SetState(key, StateClassLetter)
	assert.Equal(t, StateClassLetter, sm.GetState(key))

	sm.ClearState(key)
	assert.Equal(t, StateNone, sm.GetState(key))
}

func TestManagerSetStateNoneDeletes(t *testing.T) {
	sm := NewManager()
	key := Key{ChatID: 1, UserID: 2}

	sm.SetState(key, StatePupilFullname)
	sm.SetData(key, "invite_code", "ABC")

	sm.SetState(key, StateNone)

	assert.Equal(t, StateNone, sm.GetState(key))
	_, ok := sm.GetData(key, "invite_code")
	assert.False(t, ok)
}

func TestManagerDataScopedByKey(t *testing.T) {
	sm := NewManager()
	teacher := Key{ChatID: 1, UserID: 1}
	other := Key{ChatID: 1, UserID: 2}

	sm.SetData(teacher, "class_grade", 11)

	value, ok := sm.GetData(teacher, "class_grade")
	assert.True(t, ok)
	assert.Equal(t, 11, value)

	_, ok = sm.GetData(other, "class_grade")
	assert.False(t, ok)
}

func TestManagerGetAllDataReturnsCopy(t *testing.T) {
	sm := NewManager()
	key := Key{ChatID: 5, UserID: 5}

	sm.SetData(key, "day", 3)

	data := sm.GetAllData(key)
	assert.Equal(t, 3, data["day"])

	// Мутация копии не задевает хранимые данные
	data["day"] = 4
	value, _ := sm.GetData(key, "day")
	assert.Equal(t, 3, value)

	assert.Nil(t, sm.GetAllData(Key{ChatID: 9, UserID: 9}))
}

func TestManagerConcurrentAccess(t *testing.T) {
	sm := NewManager()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := Key{ChatID: int64(n), UserID: int64(n)}
			sm.SetState(key, StateScheduleLessons)
			sm.SetData(key, "day", n)
			sm.GetState(key)
			sm.GetAllData(key)
			sm.ClearState(key)
		}(i)
	}
	wg.Wait()
}
