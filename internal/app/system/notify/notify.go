// Package notify is the outcome-notification boundary. Every mutating
// operation emits at most one human-readable notification; rejected
// operations emit none. Sinks decide what to do with them: the log sink
// writes them through zap, the feed keeps a bounded newest-first list
// for the presentation layer to poll.
package notify

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Kind classifies a notification for presentation.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Notification is a human-readable operation outcome. Duration is a
// display hint for the presentation layer; zero means its default.
type Notification struct {
	Kind        Kind          `json:"kind"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Duration    time.Duration `json:"duration,omitempty"`
	At          time.Time     `json:"at"`
}

// Notifier receives operation outcomes. No acknowledgement is expected.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Success builds a success notification.
func Success(title, description string) Notification {
	return Notification{Kind: KindSuccess, Title: title, Description: description, At: time.Now().UTC()}
}

// Info builds an info notification.
func Info(title, description string) Notification {
	return Notification{Kind: KindInfo, Title: title, Description: description, At: time.Now().UTC()}
}

// Warning builds a warning notification with a display duration.
func Warning(title, description string, duration time.Duration) Notification {
	return Notification{Kind: KindWarning, Title: title, Description: description, Duration: duration, At: time.Now().UTC()}
}

// LogSink writes notifications to the application log.
type LogSink struct {
	log *zap.Logger
}

func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{log: logger}
}

func (s *LogSink) Notify(ctx context.Context, n Notification) {
	fields := []zap.Field{
		zap.String("kind", string(n.Kind)),
		zap.String("description", n.Description),
	}
	if n.Duration > 0 {
		fields = append(fields, zap.Duration("duration", n.Duration))
	}
	switch n.Kind {
	case KindWarning:
		s.log.Warn(n.Title, fields...)
	case KindError:
		s.log.Error(n.Title, fields...)
	default:
		s.log.Info(n.Title, fields...)
	}
}

// Feed retains the most recent notifications, newest first.
type Feed struct {
	mu    sync.RWMutex
	max   int
	items []Notification
}

func NewFeed(max int) *Feed {
	return &Feed{max: max}
}

func (f *Feed) Notify(ctx context.Context, n Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.items = append([]Notification{n}, f.items...)
	if len(f.items) > f.max {
		f.items = f.items[:f.max]
	}
}

// Recent returns the retained notifications, newest first.
func (f *Feed) Recent() []Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]Notification(nil), f.items...)
}

// Multi fans a notification out to several sinks in order.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n Notification) {
	for _, sink := range m {
		sink.Notify(ctx, n)
	}
}
