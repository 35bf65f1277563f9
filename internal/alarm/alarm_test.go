package alarm

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/qiblatech/minaret/internal/model"
	"github.com/qiblatech/minaret/internal/settings"
)

type capturePub struct {
	mu       sync.Mutex
	payloads map[string][][]byte
}

func newCapturePub() *capturePub {
	return &capturePub{payloads: map[string][][]byte{}}
}

func (c *capturePub) Publish(clientID string, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.payloads[clientID] = append(c.payloads[clientID], payload)
	return nil
}

func (c *capturePub) count(clientID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.payloads[clientID])
}

func (c *capturePub) last(clientID string) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	ps := c.payloads[clientID]
	if len(ps) == 0 {
		return nil
	}
	return ps[len(ps)-1]
}

func TestSchedule_FiresWithPayload(t *testing.T) {
	pub := newCapturePub()
	s := NewScheduler(pub)

	base := time.Now()
	s.now = func() time.Time { return base }

	err := s.Schedule("dev-1", "Isha", base.Add(20*time.Millisecond), "Sultan Masjid", 0)
	assert.NoError(t, err)

	assert.Eventually(t, func() bool { return pub.count("dev-1") == 1 },
		time.Second, 5*time.Millisecond)

	var r Reminder
	assert.NoError(t, json.Unmarshal(pub.last("dev-1"), &r))
	assert.Equal(t, 5, r.ID)
	assert.Equal(t, "isha", r.Prayer)
	assert.Equal(t, "Isha Prayer Time", r.Title)
	assert.Contains(t, r.Body, "Sultan Masjid")
}

func TestSchedule_UnknownPrayerRejected(t *testing.T) {
	s := NewScheduler(newCapturePub())
	err := s.Schedule("dev-1", "sunrise", time.Now().Add(time.Hour), "m", 0)
	assert.Error(t, err)
}

func TestSchedule_PastTimeRollsToTomorrow(t *testing.T) {
	pub := newCapturePub()
	s := NewScheduler(pub)

	base := time.Date(2026, 5, 11, 20, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	err := s.Schedule("dev-1", "fajr", base.Add(-15*time.Hour), "m", 0)
	assert.NoError(t, err)

	s.mu.Lock()
	_, pending := s.timers["dev-1/fajr"]
	s.mu.Unlock()
	assert.True(t, pending, "a rolled-forward reminder should be armed, not fired")
	s.Cancel("dev-1", "fajr")
}

func TestCancelPreventsDelivery(t *testing.T) {
	pub := newCapturePub()
	s := NewScheduler(pub)

	base := time.Now()
	s.now = func() time.Time { return base }

	assert.NoError(t, s.Schedule("dev-1", "asr", base.Add(30*time.Millisecond), "m", 0))
	s.Cancel("dev-1", "asr")

	time.Sleep(80 * time.Millisecond)
	assert.Zero(t, pub.count("dev-1"))
}

func TestCancelAllIsPerClient(t *testing.T) {
	pub := newCapturePub()
	s := NewScheduler(pub)

	base := time.Now()
	s.now = func() time.Time { return base }

	assert.NoError(t, s.Schedule("a", "fajr", base.Add(time.Hour), "m", 0))
	assert.NoError(t, s.Schedule("a", "isha", base.Add(time.Hour), "m", 0))
	assert.NoError(t, s.Schedule("b", "isha", base.Add(time.Hour), "m", 0))

	s.CancelAll("a")

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.NotContains(t, s.timers, "a/fajr")
	assert.NotContains(t, s.timers, "a/isha")
	assert.Contains(t, s.timers, "b/isha")
}

func TestScheduleJamat(t *testing.T) {
	pub := newCapturePub()
	s := NewScheduler(pub)

	base := time.Date(2026, 5, 11, 4, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	mosque := model.Mosque{
		Name: "Masjid Al-Noor",
		JamatTimes: model.JamatTimes{
			Fajr:   "5:30 AM",
			Dhuhr:  "1:45 PM",
			Asr:    "not a time",
			Sunset: "6:45 PM",
			Isha:   "8:30 PM",
		},
	}

	prefs := settings.Defaults()
	prefs.Alarms.Enabled = true
	prefs.Alarms.Dhuhr = false

	s.ScheduleJamat("dev-1", mosque, prefs, time.UTC)

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.Contains(t, s.timers, "dev-1/fajr")
	assert.Contains(t, s.timers, "dev-1/maghrib", "maghrib uses the sunset string")
	assert.Contains(t, s.timers, "dev-1/isha")
	assert.NotContains(t, s.timers, "dev-1/dhuhr", "disabled prayers are not armed")
	assert.NotContains(t, s.timers, "dev-1/asr", "unparseable times schedule nothing")
}

func TestScheduleJamat_DisabledCancelsEverything(t *testing.T) {
	pub := newCapturePub()
	s := NewScheduler(pub)

	base := time.Now()
	s.now = func() time.Time { return base }
	assert.NoError(t, s.Schedule("dev-1", "fajr", base.Add(time.Hour), "m", 0))

	prefs := settings.Defaults()
	prefs.Alarms.Enabled = false
	s.ScheduleJamat("dev-1", model.Mosque{}, prefs, time.UTC)

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.Empty(t, s.timers)
}
