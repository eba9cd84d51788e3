package service

import (
	"sync"
	"time"

	"mindmate_backend/internal/model"
	"mindmate_backend/internal/util"
	"mindmate_backend/pkg/logger"
	"mindmate_backend/pkg/monitoring"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionStore 内存中的评估会话，超过 ttl 未活动的会话由清理协程移除
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*model.AssessmentSession
	ttl      time.Duration
	now      func() time.Time
	stop     chan struct{}
	done     chan struct{}
	once     sync.Once
	started  bool
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*model.AssessmentSession),
		ttl:      ttl,
		now:      time.Now,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// StartJanitor 启动过期清理协程，Stop 后退出
func (s *SessionStore) StartJanitor(interval time.Duration) {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				if n := s.Sweep(); n > 0 {
					logger.Log.Debug("expired assessment sessions removed", zap.Int("count", n))
				}
			}
		}
	}()
}

// Stop 停止清理协程；未启动时直接返回
func (s *SessionStore) Stop() {
	s.once.Do(func() {
		close(s.stop)
	})

	s.mu.Lock()
	started := s.started
	s.mu.Unlock()
	if started {
		<-s.done
	}
}

func (s *SessionStore) Create(numQuestions int) *model.AssessmentSession {
	now := s.now()
	sess := &model.AssessmentSession{
		ID:        uuid.New().String(),
		Answers:   make([]*int, numQuestions),
		StartedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	n := len(s.sessions)
	s.mu.Unlock()

	monitoring.ActiveSessions.Set(float64(n))
	return sess
}

// Update 在锁内修改会话；会话不存在或已过期时返回 ErrSessionNotFound
func (s *SessionStore) Update(id string, fn func(sess *model.AssessmentSession) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || s.expired(sess) {
		return util.ErrSessionNotFound
	}
	if err := fn(sess); err != nil {
		return err
	}
	sess.UpdatedAt = s.now()
	return nil
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	n := len(s.sessions)
	s.mu.Unlock()

	monitoring.ActiveSessions.Set(float64(n))
}

// Sweep 移除过期会话，返回移除数量
func (s *SessionStore) Sweep() int {
	s.mu.Lock()
	removed := 0
	for id, sess := range s.sessions {
		if s.expired(sess) {
			delete(s.sessions, id)
			removed++
		}
	}
	n := len(s.sessions)
	s.mu.Unlock()

	monitoring.ActiveSessions.Set(float64(n))
	return removed
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionStore) expired(sess *model.AssessmentSession) bool {
	return s.now().Sub(sess.UpdatedAt) > s.ttl
}
