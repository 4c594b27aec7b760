package viewport

import (
	"sync"

	"github.com/google/uuid"
	"github.com/oseuis57/web-ecovision/internal/filter"
	"github.com/pkg/errors"
)

// ErrViewportNotFound reports an unknown or already torn down viewport
// session.
var ErrViewportNotFound = errors.New("viewport not found")

// Session is one open map view: its camera, its type filter, and the
// lock serializing the view's input events. Sessions share nothing
// with each other.
type Session struct {
	sync.Mutex

	ID     string
	View   *Controller
	Filter *filter.Filter
}

// Manager tracks open viewport sessions by id.
type Manager struct {
	mu       sync.RWMutex
	opts     Options
	sessions map[string]*Session
}

func NewManager(opts Options) *Manager {
	return &Manager{
		opts:     opts.withDefaults(),
		sessions: make(map[string]*Session),
	}
}

// Open creates a fresh session with default camera and filter.
func (m *Manager) Open() *Session {
	session := &Session{
		ID:     uuid.NewString(),
		View:   NewController(m.opts),
		Filter: filter.New(),
	}

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()
	return session
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, errors.Wrapf(ErrViewportNotFound, "id=%s", id)
	}
	return session, nil
}

// Close tears a session down; its state is discarded, never reset and
// reused.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return errors.Wrapf(ErrViewportNotFound, "id=%s", id)
	}
	delete(m.sessions, id)
	return nil
}
