package jamat

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/qiblatech/minaret/internal/model"
	"github.com/qiblatech/minaret/internal/prayer"
)

// Update is pushed to the watcher's callback whenever the selection or the
// countdown string changes. OK is false when the mosque has no usable jamat
// data at all.
type Update struct {
	Next      Next
	Countdown string
	OK        bool
}

// Watcher drives a mosque-detail countdown. Selection of the next jamat runs
// on a coarse tick, while the countdown string is re-rendered from the
// already-selected instant on a fine tick, so the full scan is not repeated
// every second. Both tickers share one lifetime: cancelling the context
// passed to Run tears them down together.
type Watcher struct {
	times    model.JamatTimes
	loc      *time.Location
	onUpdate func(Update)

	coarse time.Duration
	fine   time.Duration
	now    func() time.Time
}

// NewWatcher builds a watcher for one mosque's jamat times. onUpdate is
// invoked from Run's goroutine.
func NewWatcher(times model.JamatTimes, loc *time.Location, onUpdate func(Update)) *Watcher {
	return &Watcher{
		times:    times,
		loc:      loc,
		onUpdate: onUpdate,
		coarse:   time.Minute,
		fine:     time.Second,
		now:      time.Now,
	}
}

// Run blocks until ctx is cancelled, emitting an initial update immediately
// and further updates on each tick.
func (w *Watcher) Run(ctx context.Context) {
	coarse := time.NewTicker(w.coarse)
	defer coarse.Stop()
	fine := time.NewTicker(w.fine)
	defer fine.Stop()

	next, ok := NextJamat(w.times, w.now(), w.loc)
	w.emit(next, ok)

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("jamat watcher stopped")
			return
		case <-coarse.C:
			next, ok = NextJamat(w.times, w.now(), w.loc)
			w.emit(next, ok)
		case <-fine.C:
			if !ok {
				continue
			}
			// Refresh only the countdown from the selected instant.
			next.Remaining = next.Time.Sub(w.now())
			w.emit(next, true)
		}
	}
}

func (w *Watcher) emit(next Next, ok bool) {
	if !ok {
		w.onUpdate(Update{OK: false})
		return
	}
	w.onUpdate(Update{
		Next:      next,
		Countdown: prayer.FormatRemaining(next.Remaining),
		OK:        true,
	})
}
