package history

import (
	"sync"
	"time"

	"github.com/bethropolis/tidecalc/internal/event"
	"github.com/bethropolis/tidecalc/internal/logger"
)

// DefaultCapacity is the number of entries kept before the oldest is evicted.
const DefaultCapacity = 10

// Manager holds the calculation history, newest entry first.
type Manager struct {
	entries  []Entry // entries[0] is the newest
	capacity int
	events   *event.Manager // Optional; nil disables change notifications
	now      func() time.Time
	mutex    sync.Mutex
}

// NewManager creates a history manager. A capacity <= 0 uses DefaultCapacity.
func NewManager(capacity int, events *event.Manager) *Manager {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Manager{
		entries:  make([]Entry, 0, capacity),
		capacity: capacity,
		events:   events,
		now:      time.Now,
	}
}

// Attach subscribes the manager to evaluation events so every completed
// Equals is recorded. It returns the subscription for later removal.
func (m *Manager) Attach(events *event.Manager) event.Subscription {
	return events.Subscribe(event.TypeEvaluated, func(e event.Event) bool {
		data, ok := e.Data.(event.EvaluatedData)
		if !ok {
			logger.Warnf("History: Evaluated event with unexpected data type: %T", e.Data)
			return false
		}
		m.Record(NewEntry(data.Evaluation, m.now()))
		return false
	})
}

// Record adds an entry as the newest, evicting the oldest beyond capacity.
func (m *Manager) Record(entry Entry) {
	m.mutex.Lock()
	m.entries = append(m.entries, Entry{})
	copy(m.entries[1:], m.entries)
	m.entries[0] = entry
	if len(m.entries) > m.capacity {
		m.entries = m.entries[:m.capacity]
	}
	count := len(m.entries)
	m.mutex.Unlock()

	logger.DebugTagf("history", "History: Recorded %q. Count: %d", entry.String(), count)
	m.notify(event.HistoryChangedData{Len: count})
}

// Entries returns a copy of the history, newest first.
func (m *Manager) Entries() []Entry {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Latest returns the newest entry, if any.
func (m *Manager) Latest() (Entry, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if len(m.entries) == 0 {
		return Entry{}, false
	}
	return m.entries[0], true
}

// Len returns the number of entries held.
func (m *Manager) Len() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.entries)
}

// Capacity returns the maximum number of entries held.
func (m *Manager) Capacity() int {
	return m.capacity
}

// Clear drops every entry.
func (m *Manager) Clear() {
	m.mutex.Lock()
	m.entries = m.entries[:0] // Keep allocated capacity
	m.mutex.Unlock()
	logger.Debugf("History: Cleared.")
	m.notify(event.HistoryChangedData{Len: 0, Cleared: true})
}

// notify runs outside the lock so handlers may read the history.
func (m *Manager) notify(data event.HistoryChangedData) {
	if m.events != nil {
		m.events.Dispatch(event.TypeHistoryChanged, data)
	}
}
