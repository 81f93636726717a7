// Package notify carries user-facing success and error messages produced by document
// mutations. The dashboard UI polls them and renders toasts.
package notify

import (
	"context"
	"sync"
	"time"

	"dashboard/backend/pkg/logger"
	"dashboard/backend/pkg/snowflake"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Notification struct {
	ID        int64
	Level     Level
	Title     string
	Message   string
	CreatedAt time.Time
}

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
type Sink interface {
	Notify(ctx context.Context, n Notification)
}

const DefaultLimit = 50

// Buffer is a Sink that keeps the most recent notifications in a fixed-size ring.
type Buffer struct {
	mu    sync.Mutex
	ring  []Notification
	next  int
	count int

	nextID func() int64
	now    func() time.Time
}

type Option func(*Buffer)

func WithIDGenerator(next func() int64) Option {
	return func(b *Buffer) { b.nextID = next }
}

func WithClock(now func() time.Time) Option {
	return func(b *Buffer) { b.now = now }
}

// NewBuffer returns a ring holding up to limit notifications. A non-positive limit uses DefaultLimit.
func NewBuffer(limit int, opts ...Option) *Buffer {
	if limit <= 0 {
		limit = DefaultLimit
	}
	b := &Buffer{
		ring:   make([]Notification, limit),
		nextID: snowflake.NextID,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Notify stores n, filling in ID and CreatedAt when unset, and logs it.
func (b *Buffer) Notify(_ context.Context, n Notification) {
	if n.Level == "" {
		n.Level = LevelSuccess
	}

	b.mu.Lock()
	if n.ID == 0 {
		n.ID = b.nextID()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = b.now().UTC()
	}
	b.ring[b.next] = n
	b.next = (b.next + 1) % len(b.ring)
	if b.count < len(b.ring) {
		b.count++
	}
	b.mu.Unlock()

	if n.Level == LevelError {
		logger.Warn(n.Title, "module", "notify", "action", "notify", "resource", "notification", "result", "failed", "message", n.Message)
		return
	}
	logger.Info(n.Title, "module", "notify", "action", "notify", "resource", "notification", "result", "ok", "message", n.Message)
}

// Recent returns up to limit notifications, newest first. A non-positive limit returns all of them.
func (b *Buffer) Recent(limit int) []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()

	if limit <= 0 || limit > b.count {
		limit = b.count
	}
	out := make([]Notification, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (b.next - i + len(b.ring)) % len(b.ring)
		out = append(out, b.ring[idx])
	}
	return out
}

func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count
}
