package recipes

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nexa-tech-solution/tu-lanh-thong-minh/domain"
)

// AdDuration mirrors the fixed ad countdown of the client. A session
// cannot be cancelled once started; it either completes or is replaced.
const AdDuration = 5 * time.Second

type adSession struct {
	startedAt time.Time
}

type adSessionManager struct {
	mu       sync.Mutex
	sessions map[string]adSession
	now      func() time.Time
}

func newAdSessionManager() *adSessionManager {
	return &adSessionManager{
		sessions: make(map[string]adSession),
		now:      time.Now,
	}
}

func (m *adSessionManager) Start() domain.AdSessionResponse {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.New().String()
	m.sessions[id] = adSession{startedAt: m.now()}
	return domain.AdSessionResponse{
		SessionID:       id,
		DurationSeconds: int(AdDuration.Seconds()),
	}
}

// Complete consumes the session so it can trigger at most one forced
// refresh. Completing before the countdown elapsed is rejected.
func (m *adSessionManager) Complete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return domain.ErrAdSessionNotFound
	}
	if m.now().Sub(session.startedAt) < AdDuration {
		return domain.ErrAdSessionStillRunning
	}
	delete(m.sessions, id)
	return nil
}
