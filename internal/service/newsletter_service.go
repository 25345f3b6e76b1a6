package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ulazimo/kolagen/internal/metrics"
	"github.com/ulazimo/kolagen/internal/newsletter"
)

// SubscribedLabel текст кнопки после успешной подписки
const SubscribedLabel = "Prijavljeni!"

// NewsletterService подписка на рассылку (без хранения, только публикация)
type NewsletterService struct {
	pub      newsletter.Publisher
	validate *validator.Validate
	now      func() time.Time
}

func NewNewsletterService(pub newsletter.Publisher) *NewsletterService {
	return &NewsletterService{pub: pub, validate: validator.New(), now: time.Now}
}

func (s *NewsletterService) Subscribe(ctx context.Context, email string) (newsletter.Subscription, error) {
	email = strings.TrimSpace(email)
	if err := s.validate.Var(email, "required,email"); err != nil {
		metrics.NewsletterSignups.WithLabelValues("invalid").Inc()
		return newsletter.Subscription{}, fmt.Errorf("%w: email", ErrInvalidInput)
	}
	sub := newsletter.Subscription{
		Email:        strings.ToLower(email),
		SubscribedAt: s.now().UTC(),
		Source:       "website",
	}
	if err := s.pub.Publish(ctx, sub); err != nil {
		metrics.NewsletterSignups.WithLabelValues("error").Inc()
		return newsletter.Subscription{}, fmt.Errorf("publish subscription: %w", err)
	}
	metrics.NewsletterSignups.WithLabelValues("ok").Inc()
	return sub, nil
}
