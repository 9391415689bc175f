package dashboard

import (
	"sync"
	"time"
)

// Kind distinguishes success from error banners.
type Kind int

const (
	KindSuccess Kind = iota
	KindError
)

// Banner is a self-clearing status message. Each Show arms a dismissal timer
// scoped to that message; replacing the message cancels the previous timer so
// an old timer can never clear a newer message.
type Banner struct {
	ttl time.Duration

	mu    sync.Mutex
	msg   string
	kind  Kind
	seq   uint64
	timer *time.Timer
}

// NewBanner creates a banner whose messages clear after ttl.
func NewBanner(ttl time.Duration) *Banner {
	return &Banner{ttl: ttl}
}

// ShowSuccess displays a success message.
func (b *Banner) ShowSuccess(msg string) { b.show(msg, KindSuccess) }

// ShowError displays an error message.
func (b *Banner) ShowError(msg string) { b.show(msg, KindError) }

func (b *Banner) show(msg string, kind Kind) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timer != nil {
		b.timer.Stop()
	}
	b.msg = msg
	b.kind = kind
	b.seq++

	seq := b.seq
	b.timer = time.AfterFunc(b.ttl, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		// A newer message replaced this one; leave it alone.
		if b.seq != seq {
			return
		}
		b.msg = ""
	})
}

// Current returns the visible message, if any.
func (b *Banner) Current() (string, Kind, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.msg, b.kind, b.msg != ""
}

// Clear dismisses the banner immediately.
func (b *Banner) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
	}
	b.msg = ""
	b.seq++
}
