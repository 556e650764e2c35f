// Package events defines the notification contract between the
// simulation core and whatever front end displays it. The core emits
// fire-and-forget notifications; it never blocks on a sink.
package events

import (
	"log/slog"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
)

// Kind separates transient toasts from the persistent activity log.
type Kind string

const (
	KindToast Kind = "toast"
	KindLog   Kind = "log"
)

// Notification is one human-readable message emitted by a process
// transition. Icon and Color are presentation pass-through.
type Notification struct {
	Kind    Kind      `json:"kind"`
	Message string    `json:"message"`
	Icon    string    `json:"icon"`
	Color   string    `json:"color,omitempty"`
	At      time.Time `json:"at"`
}

// Sink receives notifications. Implementations must not block.
type Sink interface {
	Notify(n Notification)
}

// SlogSink writes every notification to the default structured logger.
type SlogSink struct{}

// Notify logs the notification at info level.
func (SlogSink) Notify(n Notification) {
	slog.Info("notify", "kind", n.Kind, "icon", n.Icon, "message", n.Message)
}

// Feed keeps the most recent notifications in a bounded ring, newest
// first, for the API and CLI to read back.
type Feed struct {
	mu    sync.Mutex
	limit int
	items []Notification
}

// NewFeed creates a feed retaining at most limit notifications.
func NewFeed(limit int) *Feed {
	return &Feed{limit: limit}
}

// Notify prepends the notification, dropping the oldest past the limit.
func (f *Feed) Notify(n Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append([]Notification{n}, f.items...)
	if len(f.items) > f.limit {
		f.items = f.items[:f.limit]
	}
}

// Recent returns a copy of the retained notifications, newest first.
func (f *Feed) Recent() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Notification, len(f.items))
	copy(out, f.items)
	return out
}

// Multi fans out to several sinks.
type Multi []Sink

// Notify forwards the notification to every sink.
func (m Multi) Notify(n Notification) {
	for _, s := range m {
		s.Notify(n)
	}
}

// Discard drops everything; useful in tests.
type Discard struct{}

// Notify does nothing.
func (Discard) Notify(Notification) {}

// FormatCredits renders a credit amount for players: thousands
// separated, fraction truncated.
func FormatCredits(c float64) string {
	return humanize.Comma(int64(c))
}
