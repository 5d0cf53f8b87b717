// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package feedback

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/vkashegde/smart-utils/pkg/timeutil"
)

// Notice lifetimes.
const (
	// DefaultToastTTL is how long a toast stays before self-removal.
	DefaultToastTTL = 2500 * time.Millisecond
	// DefaultSnackbarTTL is the longer snackbar lifetime, giving the
	// action label time to be read.
	DefaultSnackbarTTL = 4 * time.Second
)

// toastEntry pairs a live overlay with its expiry timer.
type toastEntry struct {
	overlay Overlay
	timer   *time.Timer
}

// Notifier owns the overlay bookkeeping above one Surface: the set of
// live toasts, the singleton loader, expiry timers, and a rate limit
// that keeps a hot loop from flooding the terminal.
//
// All methods are safe for concurrent use; expiry timers fire on their
// own goroutines.
type Notifier struct {
	surface Surface
	clock   timeutil.Clock
	limiter *rate.Limiter

	mu     sync.Mutex
	toasts map[uuid.UUID]*toastEntry
	loader *Overlay
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithClock pins the timestamp source, for tests.
func WithClock(c timeutil.Clock) Option {
	return func(n *Notifier) { n.clock = c }
}

// WithRateLimit replaces the default toast rate limit of 10 per
// second, burst 5. A nil limiter disables limiting.
func WithRateLimit(l *rate.Limiter) Option {
	return func(n *Notifier) { n.limiter = l }
}

// NewNotifier builds a Notifier over s.
func NewNotifier(s Surface, opts ...Option) *Notifier {
	n := &Notifier{
		surface: s,
		clock:   timeutil.RealClock{},
		limiter: rate.NewLimiter(rate.Limit(10), 5),
		toasts:  make(map[uuid.UUID]*toastEntry),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// ToastOption configures a single toast.
type ToastOption func(*Overlay)

// WithLevel sets the toast's severity styling.
func WithLevel(l Level) ToastOption {
	return func(o *Overlay) { o.Level = l }
}

// WithTTL overrides the toast lifetime.
func WithTTL(d time.Duration) ToastOption {
	return func(o *Overlay) { o.TTL = d }
}

// Toast shows a self-expiring notice and returns its handle. The
// returned ID is uuid.Nil when nothing was shown: detached surface, or
// the toast was dropped by the rate limit. Dismissing uuid.Nil is a
// safe no-op, so callers may ignore the distinction.
func (n *Notifier) Toast(text string, opts ...ToastOption) uuid.UUID {
	o := Overlay{
		ID:      uuid.New(),
		Kind:    KindToast,
		Text:    text,
		Level:   LevelInfo,
		Created: n.clock.Now(),
		TTL:     DefaultToastTTL,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return n.show(o)
}

// Snackbar shows an action-labeled notice, e.g. "file deleted [UNDO]".
// Same semantics as Toast, with a longer default lifetime.
func (n *Notifier) Snackbar(text, action string, opts ...ToastOption) uuid.UUID {
	o := Overlay{
		ID:      uuid.New(),
		Kind:    KindSnackbar,
		Text:    text,
		Action:  action,
		Level:   LevelInfo,
		Created: n.clock.Now(),
		TTL:     DefaultSnackbarTTL,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return n.show(o)
}

// show runs the shared stale-context, rate-limit, insert, and timer
// arming path.
func (n *Notifier) show(o Overlay) uuid.UUID {
	if !n.surface.Attached() {
		return uuid.Nil
	}
	if n.limiter != nil && !n.limiter.Allow() {
		return uuid.Nil
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.surface.Insert(o); err != nil {
		return uuid.Nil
	}

	entry := &toastEntry{overlay: o}
	if o.TTL > 0 {
		entry.timer = time.AfterFunc(o.TTL, func() { n.Dismiss(o.ID) })
	}
	n.toasts[o.ID] = entry
	return o.ID
}

// Dismiss removes one notice early. Unknown or already-expired IDs are
// no-ops, which is what makes a late expiry timer racing a manual
// dismissal harmless.
func (n *Notifier) Dismiss(id uuid.UUID) {
	n.mu.Lock()
	entry, ok := n.toasts[id]
	if ok {
		delete(n.toasts, id)
	}
	n.mu.Unlock()

	if !ok {
		return
	}
	if entry.timer != nil {
		entry.timer.Stop()
	}
	n.surface.Remove(id)
}

// DismissAll removes every live notice. Safe when none are active.
func (n *Notifier) DismissAll() {
	n.mu.Lock()
	entries := n.toasts
	n.toasts = make(map[uuid.UUID]*toastEntry)
	n.mu.Unlock()

	for id, entry := range entries {
		if entry.timer != nil {
			entry.timer.Stop()
		}
		n.surface.Remove(id)
	}
}

// ShowLoader displays the loading spinner, or updates its text when
// one is already visible. The loader is a singleton: there is never
// more than one, however many times this is called.
func (n *Notifier) ShowLoader(text string) {
	if !n.surface.Attached() {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.loader != nil {
		o := *n.loader
		o.Text = text
		if err := n.surface.Insert(o); err == nil {
			n.loader = &o
		}
		return
	}

	o := Overlay{
		ID:      uuid.New(),
		Kind:    KindLoader,
		Text:    text,
		Level:   LevelInfo,
		Created: n.clock.Now(),
	}
	if err := n.surface.Insert(o); err != nil {
		return
	}
	n.loader = &o
}

// HideLoader removes the loader. Idempotent: hiding an absent loader
// does nothing.
func (n *Notifier) HideLoader() {
	n.mu.Lock()
	loader := n.loader
	n.loader = nil
	n.mu.Unlock()

	if loader == nil {
		return
	}
	n.surface.Remove(loader.ID)
}

// LoaderVisible reports whether the loader is currently shown.
func (n *Notifier) LoaderVisible() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.loader != nil
}

// Active returns a snapshot of every live overlay, oldest first, the
// loader last.
func (n *Notifier) Active() []Overlay {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]Overlay, 0, len(n.toasts)+1)
	for _, entry := range n.toasts {
		out = append(out, entry.overlay)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Created.Before(out[j].Created)
	})
	if n.loader != nil {
		out = append(out, *n.loader)
	}
	return out
}
