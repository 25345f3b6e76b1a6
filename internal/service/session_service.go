package service

import (
	"context"

	"github.com/ulazimo/kolagen/internal/domain"
	"github.com/ulazimo/kolagen/internal/notify"
	"github.com/ulazimo/kolagen/internal/session"
	"github.com/ulazimo/kolagen/internal/slider"
)

// Banner text shown after the external form service redirects back.
const (
	SuccessTitle = "Hvala na narudžbini!"
	SuccessText  = "Kontaktiraćemo vas uskoro sa detaljima dostave."
)

const successBannerKey = "success-banner"

// SlideView состояние слайдера отзывов
type SlideView struct {
	Current       int  `json:"current"`
	Total         int  `json:"total"`
	ItemsPerSlide int  `json:"items_per_slide"`
	Autoplay      bool `json:"autoplay"`
	// Offset сдвиг дорожки карточек в px для клиентской анимации
	Offset int `json:"offset"`
}

// SessionService слайдер отзывов и уведомления сессии
type SessionService struct{}

func NewSessionService() *SessionService { return &SessionService{} }

func (s *SessionService) Slides(_ context.Context, sess *session.Session) SlideView {
	var v SlideView
	_ = sess.Do(func(sess *session.Session) error {
		v = slideView(sess)
		return nil
	})
	return v
}

func (s *SessionService) NextSlide(_ context.Context, sess *session.Session) SlideView {
	return s.navigate(sess, (*slider.Slider).Next)
}

func (s *SessionService) PrevSlide(_ context.Context, sess *session.Session) SlideView {
	return s.navigate(sess, (*slider.Slider).Prev)
}

func (s *SessionService) JumpToSlide(_ context.Context, sess *session.Session, index int) SlideView {
	return s.navigate(sess, func(sl *slider.Slider) int { return sl.JumpTo(index) })
}

// SetViewport применяется после паузы, поэтому сразу возвращает текущее состояние
func (s *SessionService) SetViewport(ctx context.Context, sess *session.Session, width int) (SlideView, error) {
	if width <= 0 {
		return SlideView{}, ErrInvalidInput
	}
	sess.SetViewport(width)
	return s.Slides(ctx, sess), nil
}

func (s *SessionService) navigate(sess *session.Session, move func(*slider.Slider) int) SlideView {
	var v SlideView
	_ = sess.Do(func(sess *session.Session) error {
		sess.Navigate(move)
		v = slideView(sess)
		return nil
	})
	return v
}

func slideView(sess *session.Session) SlideView {
	return SlideView{
		Current:       sess.Slides.Current(),
		Total:         sess.Slides.TotalSlides(),
		ItemsPerSlide: sess.Slides.ItemsPerSlide(),
		Autoplay:      sess.AutoplayRunning(),
		Offset:        sess.Slides.Offset(slider.CardWidth, slider.CardGap),
	}
}

func (s *SessionService) Notices(_ context.Context, sess *session.Session) []domain.Notice {
	return sess.Notices.Active()
}

func (s *SessionService) Dismiss(_ context.Context, sess *session.Session, id int64) bool {
	return sess.Notices.Dismiss(id)
}

// OrderSucceeded вызывается при возврате с внешнего сервиса: заказ ушёл,
// корзина и форма очищаются, баннер висит 10 секунд
func (s *SessionService) OrderSucceeded(_ context.Context, sess *session.Session) domain.Notice {
	_ = sess.Do(func(sess *session.Session) error {
		sess.ClearOrder()
		return nil
	})
	return sess.Notices.Post(successBannerKey, domain.NoticeSuccess, SuccessTitle+" "+SuccessText, notify.BannerTTL)
}
