package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ulazimo/kolagen/internal/newsletter"
)

type recordingPublisher struct {
	got []newsletter.Subscription
	err error
}

func (p *recordingPublisher) Publish(_ context.Context, s newsletter.Subscription) error {
	if p.err != nil {
		return p.err
	}
	p.got = append(p.got, s)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func TestSubscribe(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	s := NewNewsletterService(pub)

	sub, err := s.Subscribe(ctx, "  Ana@Example.COM ")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if sub.Email != "ana@example.com" || sub.Source != "website" || sub.SubscribedAt.IsZero() {
		t.Fatalf("unexpected subscription %+v", sub)
	}
	if len(pub.got) != 1 {
		t.Fatalf("expected one published subscription, got %d", len(pub.got))
	}
}

func TestSubscribe_Invalid(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	s := NewNewsletterService(pub)

	for _, email := range []string{"", "ana", "ana@"} {
		if _, err := s.Subscribe(ctx, email); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%q: expected invalid input, got %v", email, err)
		}
	}
	if len(pub.got) != 0 {
		t.Fatalf("invalid addresses must not be published")
	}
}

func TestSubscribe_PublisherError(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker down")}
	s := NewNewsletterService(pub)
	if _, err := s.Subscribe(context.Background(), "ana@example.com"); err == nil || errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected publish error, got %v", err)
	}
}
