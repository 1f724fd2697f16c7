package editor

import (
	"sync"
)

// ErrorEvent - имя события с ошибкой, которое показывается пользователю
const ErrorEvent = "serviceDeskJhipsterApp.error"

// Event - событие с произвольным содержимым
type Event struct {
	Name    string
	Content any
}

// AlertError - содержимое события ErrorEvent
type AlertError struct {
	Message string
	Key     string
	Params  map[string]string
}

// EventManager рассылает события подписчикам по имени
type EventManager struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[string]map[int]func(Event)
}

func NewEventManager() *EventManager {
	return &EventManager{handlers: make(map[string]map[int]func(Event))}
}

// Subscribe подписывает handler на события name и возвращает функцию отписки
func (m *EventManager) Subscribe(name string, handler func(Event)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	if m.handlers[name] == nil {
		m.handlers[name] = make(map[int]func(Event))
	}
	m.handlers[name][id] = handler

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			delete(m.handlers[name], id)
		})
	}
}

// Broadcast синхронно вызывает всех подписчиков события
func (m *EventManager) Broadcast(event Event) {
	m.mu.RLock()
	handlers := make([]func(Event), 0, len(m.handlers[event.Name]))
	for _, h := range m.handlers[event.Name] {
		handlers = append(handlers, h)
	}
	m.mu.RUnlock()

	for _, h := range handlers {
		h(event)
	}
}

// BroadcastError рассылает AlertError с текстом message
func (m *EventManager) BroadcastError(alert AlertError) {
	m.Broadcast(Event{Name: ErrorEvent, Content: alert})
}
