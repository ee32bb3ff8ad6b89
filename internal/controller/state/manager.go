package state

import (
	"sync"
)

// Manager управляет состояниями диалогов. Состояния живут в памяти
// процесса и не имеют TTL: они очищаются по завершении или отмене
// диалога.
type Manager struct {
	mu     sync.RWMutex
	states map[Key]*UserData
}

// NewManager создаёт новый менеджер состояний
func NewManager() *Manager {
	return &Manager{
		states: make(map[Key]*UserData),
	}
}

// GetState получает текущее состояние диалога
func (sm *Manager) GetState(key Key) UserState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if userData, exists := sm.states[key]; exists {
		return userData.State
	}
	return StateNone
}

// SetState устанавливает состояние диалога
func (sm *Manager) SetState(key Key, state UserState) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if state == StateNone {
		// Если состояние None, удаляем запись
		delete(sm.states, key)
		return
	}

	if _, exists := sm.states[key]; !exists {
		sm.states[key] = &UserData{
			State: state,
			Data:  make(map[string]interface{}),
		}
	} else {
		sm.states[key].State = state
	}
}

// GetData получает временные данные диалога по ключу
func (sm *Manager) GetData(key Key, name string) (interface{}, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if userData, exists := sm.states[key]; exists {
		value, ok := userData.Data[name]
		return value, ok
	}
	return nil, false
}

// SetData устанавливает временные данные диалога
func (sm *Manager) SetData(key Key, name string, value interface{}) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.states[key]; !exists {
		// Создаём запись если её нет
		sm.states[key] = &UserData{
			State: StateNone,
			Data:  make(map[string]interface{}),
		}
	}
	sm.states[key].Data[name] = value
}

// ClearState очищает состояние и данные диалога
func (sm *Manager) ClearState(key Key) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.states, key)
}

// GetAllData получает все временные данные диалога
func (sm *Manager) GetAllData(key Key) map[string]interface{} {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if userData, exists := sm.states[key]; exists {
		// Возвращаем копию, чтобы избежать race condition
		dataCopy := make(map[string]interface{})
		for k, v := range userData.Data {
			dataCopy[k] = v
		}
		return dataCopy
	}
	return nil
}
