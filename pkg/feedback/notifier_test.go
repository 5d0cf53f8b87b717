// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package feedback

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// newTestNotifier returns a notifier over a fresh fake surface with
// rate limiting off, so tests exercise bookkeeping, not throttling.
func newTestNotifier() (*Notifier, *FakeSurface) {
	s := NewFakeSurface()
	return NewNotifier(s, WithRateLimit(nil)), s
}

// =============================================================================
// Toast Tests
// =============================================================================

func TestToast_InsertsAndTracks(t *testing.T) {
	n, s := newTestNotifier()

	id := n.Toast("saved", WithLevel(LevelSuccess))
	require.NotEqual(t, uuid.Nil, id)

	inserts := s.Inserts()
	require.Len(t, inserts, 1)
	assert.Equal(t, "saved", inserts[0].Text)
	assert.Equal(t, KindToast, inserts[0].Kind)
	assert.Equal(t, LevelSuccess, inserts[0].Level)

	active := n.Active()
	require.Len(t, active, 1)
	assert.Equal(t, id, active[0].ID)
}

func TestToast_SelfRemovesAfterTTL(t *testing.T) {
	n, s := newTestNotifier()

	id := n.Toast("quick", WithTTL(20*time.Millisecond))
	require.NotEqual(t, uuid.Nil, id)

	assert.Eventually(t, func() bool {
		return len(n.Active()) == 0
	}, time.Second, 5*time.Millisecond, "toast did not expire")

	removes := s.Removes()
	require.Len(t, removes, 1)
	assert.Equal(t, id, removes[0])
}

func TestToast_DetachedSurfaceIsSilentNoop(t *testing.T) {
	n, s := newTestNotifier()
	s.Detach()

	id := n.Toast("unseen")

	assert.Equal(t, uuid.Nil, id)
	assert.Empty(t, s.Inserts())
	assert.Empty(t, n.Active())
}

func TestToast_RateLimitDropsSilently(t *testing.T) {
	s := NewFakeSurface()
	// One notice per minute, burst 2: the third must drop.
	n := NewNotifier(s, WithRateLimit(rate.NewLimiter(rate.Every(time.Minute), 2)))

	first := n.Toast("one")
	second := n.Toast("two")
	third := n.Toast("three")

	assert.NotEqual(t, uuid.Nil, first)
	assert.NotEqual(t, uuid.Nil, second)
	assert.Equal(t, uuid.Nil, third)
	assert.Len(t, s.Inserts(), 2)
	assert.Len(t, n.Active(), 2)
}

func TestSnackbar_CarriesAction(t *testing.T) {
	n, s := newTestNotifier()

	id := n.Snackbar("file deleted", "UNDO")
	require.NotEqual(t, uuid.Nil, id)

	inserts := s.Inserts()
	require.Len(t, inserts, 1)
	assert.Equal(t, KindSnackbar, inserts[0].Kind)
	assert.Equal(t, "UNDO", inserts[0].Action)
	assert.Contains(t, inserts[0].Render(), "[UNDO]")
}

// =============================================================================
// Dismissal Tests
// =============================================================================

func TestDismiss_RemovesEarly(t *testing.T) {
	n, s := newTestNotifier()

	id := n.Toast("going away", WithTTL(time.Hour))
	n.Dismiss(id)

	assert.Empty(t, n.Active())
	assert.Equal(t, []uuid.UUID{id}, s.Removes())
}

// A dismissal followed by the (stopped or racing) expiry timer firing
// must not remove twice; removal is guarded by set membership.
func TestDismiss_Idempotent(t *testing.T) {
	n, s := newTestNotifier()

	id := n.Toast("once", WithTTL(time.Hour))
	n.Dismiss(id)
	n.Dismiss(id)
	n.Dismiss(uuid.Nil)

	assert.Len(t, s.Removes(), 1)
}

func TestDismissAll(t *testing.T) {
	n, s := newTestNotifier()

	n.Toast("a")
	n.Toast("b")
	n.Toast("c")
	require.Len(t, n.Active(), 3)

	n.DismissAll()

	assert.Empty(t, n.Active())
	assert.Len(t, s.Removes(), 3)
}

func TestDismissAll_SafeWhenEmpty(t *testing.T) {
	n, s := newTestNotifier()

	assert.NotPanics(t, func() { n.DismissAll() })
	assert.Empty(t, s.Removes())
}

// =============================================================================
// Loader Tests
// =============================================================================

func TestLoader_Singleton(t *testing.T) {
	n, s := newTestNotifier()

	n.ShowLoader("loading")
	n.ShowLoader("still loading")
	require.True(t, n.LoaderVisible())

	// The second call refreshed the same loader rather than stacking
	// another one.
	inserts := s.Inserts()
	require.Len(t, inserts, 2)
	assert.Equal(t, inserts[0].ID, inserts[1].ID)
	assert.Equal(t, "still loading", inserts[1].Text)

	n.HideLoader()
	assert.False(t, n.LoaderVisible())
	assert.Empty(t, n.Active())
	assert.Len(t, s.Removes(), 1)
}

func TestHideLoader_Idempotent(t *testing.T) {
	n, s := newTestNotifier()

	n.HideLoader()
	n.ShowLoader("x")
	n.HideLoader()
	n.HideLoader()

	assert.False(t, n.LoaderVisible())
	assert.Len(t, s.Removes(), 1)
}

func TestShowLoader_DetachedIsSilentNoop(t *testing.T) {
	n, s := newTestNotifier()
	s.Detach()

	n.ShowLoader("unseen")

	assert.False(t, n.LoaderVisible())
	assert.Empty(t, s.Inserts())
}

// =============================================================================
// Active Snapshot Tests
// =============================================================================

func TestActive_OrderedOldestFirstLoaderLast(t *testing.T) {
	at := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	clock := &stepClock{at: at}
	n := NewNotifier(NewFakeSurface(), WithRateLimit(nil), WithClock(clock))

	first := n.Toast("first", WithTTL(time.Hour))
	second := n.Toast("second", WithTTL(time.Hour))
	n.ShowLoader("working")

	active := n.Active()
	require.Len(t, active, 3)
	assert.Equal(t, first, active[0].ID)
	assert.Equal(t, second, active[1].ID)
	assert.Equal(t, KindLoader, active[2].Kind)
}

// stepClock advances one second per reading, giving distinct Created
// stamps.
type stepClock struct {
	at time.Time
}

func (c *stepClock) Now() time.Time {
	c.at = c.at.Add(time.Second)
	return c.at
}

func TestActive_IsASnapshot(t *testing.T) {
	n, _ := newTestNotifier()
	n.Toast("one", WithTTL(time.Hour))

	active := n.Active()
	active[0].Text = "mutated"

	assert.Equal(t, "one", n.Active()[0].Text)
}
