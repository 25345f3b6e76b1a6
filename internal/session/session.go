package session

import (
	"sync"
	"time"

	"github.com/ulazimo/kolagen/internal/cart"
	"github.com/ulazimo/kolagen/internal/domain"
	"github.com/ulazimo/kolagen/internal/notify"
	"github.com/ulazimo/kolagen/internal/pricing"
	"github.com/ulazimo/kolagen/internal/slider"
)

// ViewportDebounce пауза перед применением новой ширины окна
const ViewportDebounce = 250 * time.Millisecond

// Options параметры новой сессии
type Options struct {
	Products      []domain.ProductID
	Testimonials  int
	SlideInterval time.Duration
	Autoplay      bool
}

// Session состояние одного посетителя: корзина, форма заказа, слайдер отзывов
// и уведомления. Все изменения идут через Do.
type Session struct {
	ID string

	mu       sync.Mutex
	lastSeen time.Time

	Cart     *cart.Cart
	Form     *cart.Cart
	Slides   *slider.Slider
	Notices  *notify.Board
	sched    *notify.Scheduler
	autoplay *slider.Autoplay
	viewport *notify.Debouncer
}

func New(id string, catalog pricing.Catalog, opts Options) *Session {
	sched := notify.NewScheduler()
	s := &Session{
		ID:       id,
		lastSeen: time.Now(),
		Cart:     cart.New(catalog),
		Form:     cart.NewForm(catalog, opts.Products),
		Slides:   slider.New(opts.Testimonials),
		Notices:  notify.NewBoard(sched),
		sched:    sched,
	}
	s.Cart.OnAdd(func(p domain.Product, _ domain.CartLine) {
		s.Notices.Post("", domain.NoticeAdded, p.Name+" dodat u korpu", notify.AddedTTL)
	})
	s.viewport = notify.NewDebouncer(sched, "viewport", ViewportDebounce)
	s.autoplay = slider.NewAutoplay(sched, opts.SlideInterval, func() {
		_ = s.Do(func(s *Session) error {
			s.Slides.Next()
			return nil
		})
	})
	if opts.Autoplay {
		s.autoplay.Start()
	}
	return s
}

// Do выполняет fn под замком сессии
func (s *Session) Do(fn func(s *Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s)
}

// Touch отмечает активность сессии
func (s *Session) Touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Navigate ручное перелистывание: применяет move и сбрасывает автопрокрутку.
// Вызывать внутри Do.
func (s *Session) Navigate(move func(*slider.Slider) int) int {
	idx := move(s.Slides)
	s.autoplay.Touch()
	return idx
}

// ClearOrder очищает корзину и обнуляет степперы формы после отправленного
// заказа. Вызывать внутри Do.
func (s *Session) ClearOrder() {
	s.Cart.Clear()
	for _, l := range s.Form.Lines() {
		s.Form.Step(l.ProductID, -l.Quantity)
	}
}

func (s *Session) AutoplayRunning() bool { return s.autoplay.Running() }

// SetViewport откладывает пересчёт раскладки до паузы в событиях resize
func (s *Session) SetViewport(width int) {
	s.viewport.Trigger(func() {
		_ = s.Do(func(s *Session) error {
			s.Slides.SetViewport(width)
			return nil
		})
	})
}

// Close останавливает все таймеры сессии
func (s *Session) Close() {
	s.sched.Stop()
}
