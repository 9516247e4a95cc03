package cache

import (
	"sync"

	"jtrack-backend/internal/domain"
)

// Session groups the three entity caches of one signed-in user.
type Session struct {
	Applications *ApplicationCache
	Interviews   *InterviewCache
	Referrals    *ReferralCache
}

func newSession(userID string, apps domain.ApplicationRepository, ivs domain.InterviewRepository, refs domain.ReferralRepository) *Session {
	s := &Session{
		Applications: NewApplicationCache(apps, userID),
		Interviews:   NewInterviewCache(ivs, userID),
		Referrals:    NewReferralCache(refs, userID),
	}

	// The store cascades application deletes to interviews and referrals;
	// mirror that locally so the sibling caches do not hold orphans.
	s.Applications.Subscribe(func(ev Event) {
		if ev.Op == OpDelete && ev.ID != "" {
			s.Interviews.dropApplication(ev.ID)
			s.Referrals.dropApplication(ev.ID)
		}
	})
	return s
}

// Manager hands out the per-user cache sessions, creating them on first use.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	apps domain.ApplicationRepository
	ivs  domain.InterviewRepository
	refs domain.ReferralRepository
}

func NewManager(apps domain.ApplicationRepository, ivs domain.InterviewRepository, refs domain.ReferralRepository) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		apps:     apps,
		ivs:      ivs,
		refs:     refs,
	}
}

// Session returns the cache session for userID, creating it if needed.
func (m *Manager) Session(userID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[userID]; ok {
		return s
	}
	s := newSession(userID, m.apps, m.ivs, m.refs)
	m.sessions[userID] = s
	return s
}

// Drop discards a user's session, e.g. on sign-out.
func (m *Manager) Drop(userID string) {
	m.mu.Lock()
	delete(m.sessions, userID)
	m.mu.Unlock()
}
