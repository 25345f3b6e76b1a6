package notify

import (
	"strconv"
	"sync"
	"time"

	"github.com/ulazimo/kolagen/internal/domain"
)

// Display windows for transient notices.
const (
	AddedTTL   = 2 * time.Second
	MessageTTL = 5 * time.Second
	BannerTTL  = 10 * time.Second
)

// Board хранит активные уведомления сессии и снимает их по таймеру
type Board struct {
	mu      sync.Mutex
	sched   *Scheduler
	nextID  int64
	notices []domain.Notice
}

func NewBoard(s *Scheduler) *Board {
	return &Board{sched: s, nextID: 1}
}

// Post публикует уведомление. Пустой key означает уникальный ключ,
// иначе уведомление с тем же ключом заменяется.
func (b *Board) Post(key string, kind domain.NoticeKind, text string, ttl time.Duration) domain.Notice {
	b.mu.Lock()
	n := domain.Notice{ID: b.nextID, Key: key, Kind: kind, Text: text}
	b.nextID++
	if n.Key == "" {
		n.Key = "notice-" + strconv.FormatInt(n.ID, 10)
	}
	out := b.notices[:0]
	for _, cur := range b.notices {
		if cur.Key != n.Key {
			out = append(out, cur)
		}
	}
	b.notices = append(out, n)
	b.mu.Unlock()

	id := n.ID
	b.sched.Schedule(n.Key, ttl, func() { b.Dismiss(id) })
	return n
}

// Dismiss снимает уведомление по id. Повторный вызов ничего не делает.
func (b *Board) Dismiss(id int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, n := range b.notices {
		if n.ID == id {
			b.notices = append(b.notices[:i], b.notices[i+1:]...)
			b.sched.Cancel(n.Key)
			return true
		}
	}
	return false
}

// Active копия текущих уведомлений в порядке публикации
func (b *Board) Active() []domain.Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.Notice, len(b.notices))
	copy(out, b.notices)
	return out
}
