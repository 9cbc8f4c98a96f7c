package notify_test

import (
	"context"
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/campushub/campushub/internal/app/system/notify"
)

func TestFeed_NewestFirst(t *testing.T) {
	feed := notify.NewFeed(10)
	ctx := context.Background()

	feed.Notify(ctx, notify.Info("first", "a"))
	feed.Notify(ctx, notify.Info("second", "b"))

	recent := feed.Recent()
	if len(recent) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(recent))
	}
	if recent[0].Title != "second" {
		t.Errorf("newest should be first: got %q", recent[0].Title)
	}
}

func TestFeed_BoundedRetention(t *testing.T) {
	feed := notify.NewFeed(3)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		feed.Notify(ctx, notify.Info(fmt.Sprintf("title-%d", i), ""))
	}

	recent := feed.Recent()
	if len(recent) != 3 {
		t.Fatalf("expected 3 retained notifications, got %d", len(recent))
	}
	if recent[0].Title != "title-4" {
		t.Errorf("newest should be retained: got %q", recent[0].Title)
	}
	if recent[2].Title != "title-2" {
		t.Errorf("oldest retained should be title-2: got %q", recent[2].Title)
	}
}

func TestFeed_RecentIsCopy(t *testing.T) {
	feed := notify.NewFeed(10)
	ctx := context.Background()

	feed.Notify(ctx, notify.Info("original", ""))
	recent := feed.Recent()
	recent[0].Title = "mutated"

	if feed.Recent()[0].Title != "original" {
		t.Error("Recent must return a copy")
	}
}

func TestMulti_FansOut(t *testing.T) {
	a := notify.NewFeed(10)
	b := notify.NewFeed(10)
	multi := notify.Multi{a, b}
	ctx := context.Background()

	multi.Notify(ctx, notify.Success("done", "ok"))

	if len(a.Recent()) != 1 || len(b.Recent()) != 1 {
		t.Errorf("fan-out: got %d and %d, want 1 and 1", len(a.Recent()), len(b.Recent()))
	}
}

func TestConstructors(t *testing.T) {
	s := notify.Success("t", "d")
	if s.Kind != notify.KindSuccess {
		t.Errorf("Success kind: got %q", s.Kind)
	}
	if s.At.IsZero() {
		t.Error("expected At to be set")
	}

	w := notify.Warning("t", "d", 10)
	if w.Kind != notify.KindWarning {
		t.Errorf("Warning kind: got %q", w.Kind)
	}
	if w.Duration != 10 {
		t.Errorf("Warning duration: got %v", w.Duration)
	}
}

func TestLogSink_DoesNotPanic(t *testing.T) {
	sink := notify.NewLogSink(zap.NewNop())
	ctx := context.Background()

	for _, kind := range []notify.Kind{notify.KindSuccess, notify.KindInfo, notify.KindWarning, notify.KindError} {
		sink.Notify(ctx, notify.Notification{Kind: kind, Title: "t"})
	}
}
