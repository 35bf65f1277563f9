package jamat

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/qiblatech/minaret/internal/model"
)

var sampleTimes = model.JamatTimes{
	Fajr:  "5:00 AM",
	Dhuhr: "12:30 PM",
	Asr:   "4:15 PM",
	Isha:  "7:45 PM",
}

func at(hour, min int) time.Time {
	return time.Date(2026, 5, 11, hour, min, 0, 0, time.UTC)
}

func TestNextJamat_SelectsMinimumPositiveRemaining(t *testing.T) {
	// 6:00 PM: Fajr/Dhuhr/Asr have passed, Isha at 7:45 PM is next.
	next, ok := NextJamat(sampleTimes, at(18, 0), time.UTC)
	assert.True(t, ok)
	assert.Equal(t, "Isha", next.Name)
	assert.Equal(t, time.Hour+45*time.Minute, next.Remaining)
}

func TestNextJamat_RollsToTomorrowFajr(t *testing.T) {
	next, ok := NextJamat(sampleTimes, at(20, 0), time.UTC)
	assert.True(t, ok)
	assert.Equal(t, "Fajr", next.Name)
	assert.Equal(t, time.Date(2026, 5, 12, 5, 0, 0, 0, time.UTC), next.Time)
	assert.Equal(t, 9*time.Hour, next.Remaining)
}

func TestNextJamat_SkipsUnparseableEntries(t *testing.T) {
	times := model.JamatTimes{
		Fajr:  "garbage",
		Dhuhr: "",
		Asr:   "4:15 PM",
	}
	next, ok := NextJamat(times, at(10, 0), time.UTC)
	assert.True(t, ok)
	assert.Equal(t, "Asr", next.Name)
}

func TestNextJamat_EmptyStateWhenFajrUnusable(t *testing.T) {
	// Nothing left today and Fajr cannot anchor tomorrow.
	times := model.JamatTimes{
		Fajr: "not a time",
		Asr:  "4:15 PM",
	}
	_, ok := NextJamat(times, at(20, 0), time.UTC)
	assert.False(t, ok)

	_, ok = NextJamat(model.JamatTimes{}, at(20, 0), time.UTC)
	assert.False(t, ok)
}

func TestNextJamat_ExactTimeIsNotFuture(t *testing.T) {
	// Remaining must be strictly positive: at exactly 12:30 PM, Dhuhr has
	// started and the next jamat is Asr.
	next, ok := NextJamat(sampleTimes, at(12, 30), time.UTC)
	assert.True(t, ok)
	assert.Equal(t, "Asr", next.Name)
}

func TestWatcher_EmitsAndStops(t *testing.T) {
	var mu sync.Mutex
	var updates []Update

	w := NewWatcher(sampleTimes, time.UTC, func(u Update) {
		mu.Lock()
		updates = append(updates, u)
		mu.Unlock()
	})
	w.fine = 5 * time.Millisecond
	w.coarse = 20 * time.Millisecond
	w.now = func() time.Time { return at(18, 0) }

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	time.Sleep(60 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop on context cancellation")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.NotEmpty(t, updates)
	for _, u := range updates {
		assert.True(t, u.OK)
		assert.Equal(t, "Isha", u.Next.Name)
		assert.Equal(t, "1h 45m", u.Countdown)
	}
}

func TestWatcher_EmptyStateUpdates(t *testing.T) {
	got := make(chan Update, 1)
	w := NewWatcher(model.JamatTimes{}, time.UTC, func(u Update) {
		select {
		case got <- u:
		default:
		}
	})
	ctx, cancel := context.WithCancel(context.Background())
	go w.Run(ctx)
	defer cancel()

	select {
	case u := <-got:
		assert.False(t, u.OK)
	case <-time.After(time.Second):
		t.Fatal("no initial update")
	}
}
