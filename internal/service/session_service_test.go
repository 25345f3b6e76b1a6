package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ulazimo/kolagen/internal/domain"
)

func TestSlides_Navigation(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	sess := f.session(t)
	svc := NewSessionService()

	v := svc.Slides(ctx, sess)
	if v.Total != 2 || v.ItemsPerSlide != 3 || v.Current != 0 {
		t.Fatalf("unexpected initial state %+v", v)
	}
	if v = svc.NextSlide(ctx, sess); v.Current != 1 || v.Offset != 3*(360+24) {
		t.Fatalf("next: %+v", v)
	}
	if v = svc.NextSlide(ctx, sess); v.Current != 0 {
		t.Fatalf("next must wrap: %+v", v)
	}
	if v = svc.PrevSlide(ctx, sess); v.Current != 1 {
		t.Fatalf("prev must wrap: %+v", v)
	}
	if v = svc.JumpToSlide(ctx, sess, 9); v.Current != 0 {
		t.Fatalf("jump past end: %+v", v)
	}
	if _, err := svc.SetViewport(ctx, sess, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestNotices_SuccessBanner(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	sess := f.session(t)
	svc := NewSessionService()

	n := svc.OrderSucceeded(ctx, sess)
	svc.OrderSucceeded(ctx, sess)
	list := svc.Notices(ctx, sess)
	if len(list) != 1 || list[0].Kind != domain.NoticeSuccess {
		t.Fatalf("expected one banner, got %+v", list)
	}
	if svc.Dismiss(ctx, sess, n.ID) {
		t.Fatalf("replaced banner id must not dismiss the new one")
	}
	if !svc.Dismiss(ctx, sess, list[0].ID) {
		t.Fatalf("dismiss failed")
	}
	if len(svc.Notices(ctx, sess)) != 0 {
		t.Fatalf("banner still active")
	}
}

func TestOrderSucceeded_ClearsCartAndForm(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	sess := f.session(t)
	svc := NewSessionService()

	f.cart.Add(ctx, sess, domain.ProductPure)
	if _, err := f.cart.FormStep(ctx, sess, domain.ProductMarine, 1); err != nil {
		t.Fatal(err)
	}

	svc.OrderSucceeded(ctx, sess)
	if v := f.cart.View(ctx, sess); v.Count != 0 {
		t.Fatalf("cart not cleared after order: %+v", v)
	}
	if v := f.cart.Form(ctx, sess); !v.Summary.Empty() || v.Quantities[domain.ProductMarine] != 0 {
		t.Fatalf("form not reset after order: %+v", v)
	}
}
