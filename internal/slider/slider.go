package slider

import "time"

// Viewport breakpoints, px.
const (
	MobileMaxWidth = 768
	TabletMaxWidth = 1024
)

// Card geometry of the testimonials track, px.
const (
	CardWidth = 360
	CardGap   = 24
)

// DefaultInterval between automatic advances.
const DefaultInterval = 5 * time.Second

// Slider индекс текущего слайда отзывов
type Slider struct {
	cards    int
	perSlide int
	current  int
}

// New создаёт слайдер на cards карточек с десктопной раскладкой (3 на слайд)
func New(cards int) *Slider {
	if cards < 0 {
		cards = 0
	}
	return &Slider{cards: cards, perSlide: 3}
}

func (s *Slider) Current() int       { return s.current }
func (s *Slider) ItemsPerSlide() int { return s.perSlide }
func (s *Slider) Cards() int         { return s.cards }

// TotalSlides ceil(cards / perSlide)
func (s *Slider) TotalSlides() int {
	if s.cards == 0 {
		return 0
	}
	return (s.cards + s.perSlide - 1) / s.perSlide
}

// ItemsPerSlideFor раскладка по ширине окна
func ItemsPerSlideFor(width int) int {
	switch {
	case width <= MobileMaxWidth:
		return 1
	case width <= TabletMaxWidth:
		return 2
	default:
		return 3
	}
}

// SetViewport пересчитывает раскладку и заново приводит индекс в диапазон
func (s *Slider) SetViewport(width int) {
	s.perSlide = ItemsPerSlideFor(width)
	s.JumpTo(s.current)
}

// JumpTo: index < 0 уходит на последний слайд, index >= total на первый
func (s *Slider) JumpTo(index int) int {
	total := s.TotalSlides()
	if total == 0 {
		s.current = 0
		return 0
	}
	if index < 0 {
		index = total - 1
	}
	if index >= total {
		index = 0
	}
	s.current = index
	return s.current
}

func (s *Slider) Next() int { return s.JumpTo(s.current + 1) }
func (s *Slider) Prev() int { return s.JumpTo(s.current - 1) }

// Offset сдвиг дорожки в px для ширины карточки и промежутка
func (s *Slider) Offset(cardWidth, gap int) int {
	return s.current * s.perSlide * (cardWidth + gap)
}
