package slider

import (
	"sync"
	"time"

	"github.com/ulazimo/kolagen/internal/notify"
)

const autoplayKey = "slider-autoplay"

// Autoplay перелистывает слайды по таймеру. Touch после ручной навигации
// перезапускает отсчёт.
type Autoplay struct {
	sched    *notify.Scheduler
	interval time.Duration
	advance  func()

	mu sync.Mutex
	on bool
}

// NewAutoplay: advance вызывается на каждом тике и отвечает за свою синхронизацию
func NewAutoplay(s *notify.Scheduler, interval time.Duration, advance func()) *Autoplay {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Autoplay{sched: s, interval: interval, advance: advance}
}

func (a *Autoplay) Start() {
	a.mu.Lock()
	a.on = true
	a.mu.Unlock()
	a.arm()
}

// Touch сбрасывает таймер, если автопрокрутка включена
func (a *Autoplay) Touch() {
	if a.Running() {
		a.arm()
	}
}

func (a *Autoplay) Stop() {
	a.mu.Lock()
	a.on = false
	a.mu.Unlock()
	a.sched.Cancel(autoplayKey)
}

func (a *Autoplay) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.on
}

func (a *Autoplay) arm() {
	a.sched.Schedule(autoplayKey, a.interval, func() {
		// a tick that was already firing when Stop ran must not re-arm
		if !a.Running() {
			return
		}
		a.advance()
		if a.Running() {
			a.arm()
		}
	})
}
