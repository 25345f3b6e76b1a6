package newsletter

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Subscription одна подписка на рассылку
type Subscription struct {
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
	Source       string    `json:"source"`
}

// Publisher передаёт подписку дальше (очередь, лог)
type Publisher interface {
	Publish(ctx context.Context, s Subscription) error
	Close() error
}

// LogPublisher заглушка: только пишет подписку в лог
type LogPublisher struct {
	log *zap.Logger
}

func NewLogPublisher(log *zap.Logger) *LogPublisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(_ context.Context, s Subscription) error {
	p.log.Info("newsletter signup", zap.String("email", s.Email), zap.String("source", s.Source))
	return nil
}

func (p *LogPublisher) Close() error { return nil }
