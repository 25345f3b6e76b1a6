package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ulazimo/kolagen/internal/metrics"
	"github.com/ulazimo/kolagen/internal/session"
)

// MemorySessions in-memory хранилище сессий с вытеснением по простою
type MemorySessions struct {
	mu      sync.RWMutex
	byID    map[string]*session.Session
	catalog ProductRepository
	opts    session.Options
	ttl     time.Duration
	now     func() time.Time
	log     *zap.Logger
}

func NewMemorySessions(catalog ProductRepository, opts session.Options, ttl time.Duration, log *zap.Logger) *MemorySessions {
	if log == nil {
		log = zap.NewNop()
	}
	if len(opts.Products) == 0 {
		opts.Products = catalog.IDs()
	}
	return &MemorySessions{
		byID:    make(map[string]*session.Session),
		catalog: catalog,
		opts:    opts,
		ttl:     ttl,
		now:     time.Now,
		log:     log,
	}
}

// Ensure interfaces
var _ SessionRepository = (*MemorySessions)(nil)

func (m *MemorySessions) Create(_ context.Context) (*session.Session, error) {
	s := session.New(uuid.NewString(), m.catalog, m.opts)
	s.Touch(m.now())
	m.mu.Lock()
	m.byID[s.ID] = s
	metrics.ActiveSessions.Set(float64(len(m.byID)))
	m.mu.Unlock()
	m.log.Debug("session created", zap.String("session_id", s.ID))
	return s, nil
}

func (m *MemorySessions) Get(_ context.Context, id string) (*session.Session, error) {
	m.mu.RLock()
	s, ok := m.byID[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	s.Touch(m.now())
	return s, nil
}

func (m *MemorySessions) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	s, ok := m.byID[id]
	if ok {
		delete(m.byID, id)
		metrics.ActiveSessions.Set(float64(len(m.byID)))
	}
	m.mu.Unlock()
	if !ok {
		return ErrNotFound
	}
	s.Close()
	return nil
}

func (m *MemorySessions) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byID)
}

// Sweep удаляет сессии, неактивные дольше ttl. Возвращает число удалённых.
func (m *MemorySessions) Sweep(now time.Time) int {
	if m.ttl <= 0 {
		return 0
	}
	var expired []*session.Session
	m.mu.Lock()
	for id, s := range m.byID {
		if now.Sub(s.LastSeen()) > m.ttl {
			expired = append(expired, s)
			delete(m.byID, id)
		}
	}
	metrics.ActiveSessions.Set(float64(len(m.byID)))
	m.mu.Unlock()
	for _, s := range expired {
		s.Close()
	}
	if len(expired) > 0 {
		m.log.Info("sessions evicted", zap.Int("count", len(expired)))
	}
	return len(expired)
}

// RunJanitor периодически вызывает Sweep до отмены ctx
func (m *MemorySessions) RunJanitor(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			m.Sweep(now)
		}
	}
}
