package app

import (
	"context"
	"sync"
	"time"

	"hatch-egg-webapp/internal/common/logger"
)

// Store — in-memory хранилище сессий, ключ — id пользователя. Протухшие
// сессии периодически закрываются; закрытие отменяет контекст сессии и
// останавливает ее поллер.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]*Session

	svc *Services
	ttl time.Duration
	now func() time.Time
}

func NewStore(svc *Services, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Store{
		sessions: make(map[int64]*Session),
		svc:      svc,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get возвращает сессию пользователя, создавая ее при первом обращении.
// Анонимные посетители (id == 0) разделяют одну сессию: explorer доступен
// и без личности.
func (s *Store) Get(userID int64) *Session {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[userID]; ok {
		sess.touch(now)
		return sess
	}

	sess := newSession(userID, s.svc, now)
	s.sessions[userID] = sess
	logger.Debug().Int64("user_id", userID).Msg("Session created")
	return sess
}

// Run запускает уборку протухших сессий до отмены контекста.
func (s *Store) Run(ctx context.Context) {
	ticker := time.NewTicker(s.ttl / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Store) sweep() {
	now := s.now()

	s.mu.Lock()
	var expired []*Session
	for id, sess := range s.sessions {
		if sess.expired(now, s.ttl) {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		sess.Close()
	}
	if len(expired) > 0 {
		logger.Info().Int("count", len(expired)).Msg("Expired sessions closed")
	}
}

// Close закрывает все сессии.
func (s *Store) Close() {
	s.mu.Lock()
	sessions := make([]*Session, 0, len(s.sessions))
	for id, sess := range s.sessions {
		sessions = append(sessions, sess)
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.Close()
	}
}

// Len возвращает число живых сессий.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
