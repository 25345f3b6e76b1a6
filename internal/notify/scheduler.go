package notify

import (
	"sync"
	"time"
)

// Scheduler запускает отложенные одноразовые задачи. Задача с тем же ключом
// вытесняет предыдущую: старый таймер отменяется.
type Scheduler struct {
	mu      sync.Mutex
	seq     uint64
	tasks   map[string]*Handle
	stopped bool
}

func NewScheduler() *Scheduler {
	return &Scheduler{tasks: make(map[string]*Handle)}
}

// Handle ссылка на запланированную задачу
type Handle struct {
	s     *Scheduler
	key   string
	seq   uint64
	timer *time.Timer
}

// Schedule планирует fn через after. После Stop возвращает nil.
func (s *Scheduler) Schedule(key string, after time.Duration, fn func()) *Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return nil
	}
	if prev, ok := s.tasks[key]; ok {
		prev.timer.Stop()
	}
	s.seq++
	h := &Handle{s: s, key: key, seq: s.seq}
	h.timer = time.AfterFunc(after, func() { s.fire(h, fn) })
	s.tasks[key] = h
	return h
}

func (s *Scheduler) fire(h *Handle, fn func()) {
	s.mu.Lock()
	cur, ok := s.tasks[h.key]
	if !ok || cur.seq != h.seq || s.stopped {
		// superseded or cancelled while the timer was firing
		s.mu.Unlock()
		return
	}
	delete(s.tasks, h.key)
	s.mu.Unlock()
	fn()
}

// Cancel отменяет задачу по ключу. false, если задачи нет.
func (s *Scheduler) Cancel(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.tasks[key]
	if !ok {
		return false
	}
	h.timer.Stop()
	delete(s.tasks, key)
	return true
}

// Pending сообщает, ожидает ли задача с ключом запуска
func (s *Scheduler) Pending(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tasks[key]
	return ok
}

// Stop отменяет все задачи; последующие Schedule игнорируются
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	for k, h := range s.tasks {
		h.timer.Stop()
		delete(s.tasks, k)
	}
}

// Cancel отменяет именно эту задачу, если её ещё не вытеснили
func (h *Handle) Cancel() bool {
	if h == nil {
		return false
	}
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	cur, ok := h.s.tasks[h.key]
	if !ok || cur.seq != h.seq {
		return false
	}
	h.timer.Stop()
	delete(h.s.tasks, h.key)
	return true
}

// Debouncer выполняет только последний вызов после паузы Wait
type Debouncer struct {
	Wait time.Duration
	Key  string
	s    *Scheduler
}

func NewDebouncer(s *Scheduler, key string, wait time.Duration) *Debouncer {
	return &Debouncer{Wait: wait, Key: key, s: s}
}

func (d *Debouncer) Trigger(fn func()) {
	d.s.Schedule(d.Key, d.Wait, fn)
}
