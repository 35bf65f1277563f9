// Package alarm schedules one-shot prayer reminders and delivers them to
// client devices over MQTT. Times come from caretaker-reported jamat
// strings, parsed through the shared clock parser so alarm and jamat
// scheduling can never disagree on AM/PM handling: an unparseable string
// schedules nothing.
package alarm

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/qiblatech/minaret/internal/model"
	"github.com/qiblatech/minaret/internal/timestr"
)

// prayerIDs gives each alarm-capable prayer a stable notification id.
var prayerIDs = map[string]int{
	"fajr":    1,
	"dhuhr":   2,
	"asr":     3,
	"maghrib": 4,
	"isha":    5,
}

// Reminder is the payload delivered to the device.
type Reminder struct {
	ID     int       `json:"id"`
	Prayer string    `json:"prayer"`
	Title  string    `json:"title"`
	Body   string    `json:"body"`
	At     time.Time `json:"at"`
}

// Publisher delivers a reminder payload to one client.
type Publisher interface {
	Publish(clientID string, payload []byte) error
}

// Scheduler owns the pending reminder timers, keyed by client and prayer.
// Scheduling a prayer replaces any pending reminder for the same key.
type Scheduler struct {
	mu     sync.Mutex
	timers map[string]*time.Timer

	pub Publisher
	now func() time.Time
}

func NewScheduler(pub Publisher) *Scheduler {
	return &Scheduler{
		timers: make(map[string]*time.Timer),
		pub:    pub,
		now:    time.Now,
	}
}

func key(clientID, prayer string) string {
	return clientID + "/" + strings.ToLower(prayer)
}

// Schedule arms a one-shot reminder for the given prayer instant, firing
// lead before it. An instant already in the past rolls to the same time
// tomorrow.
func (s *Scheduler) Schedule(clientID, prayer string, at time.Time, mosqueLabel string, lead time.Duration) error {
	name := strings.ToLower(prayer)
	id, ok := prayerIDs[name]
	if !ok {
		return fmt.Errorf("no alarm id for prayer %q", prayer)
	}

	now := s.now()
	if at.Before(now) {
		at = at.AddDate(0, 0, 1)
	}
	fireIn := at.Add(-lead).Sub(now)
	if fireIn < 0 {
		fireIn = 0
	}

	title := strings.ToUpper(name[:1]) + name[1:]
	payload, err := json.Marshal(Reminder{
		ID:     id,
		Prayer: name,
		Title:  title + " Prayer Time",
		Body:   fmt.Sprintf("It's time for %s prayer at %s", title, mosqueLabel),
		At:     at,
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(clientID, name)
	if t, exists := s.timers[k]; exists {
		t.Stop()
	}
	s.timers[k] = time.AfterFunc(fireIn, func() {
		if err := s.pub.Publish(clientID, payload); err != nil {
			log.Error().Err(err).Str("prayer", name).Msg("failed to deliver reminder")
		}
		s.mu.Lock()
		delete(s.timers, k)
		s.mu.Unlock()
	})

	log.Info().Str("prayer", name).Time("at", at).Str("client", clientID).Msg("reminder scheduled")
	return nil
}

// Cancel disarms the pending reminder for one prayer.
func (s *Scheduler) Cancel(clientID, prayer string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(clientID, prayer)
	if t, ok := s.timers[k]; ok {
		t.Stop()
		delete(s.timers, k)
	}
}

// CancelAll disarms every pending reminder for a client.
func (s *Scheduler) CancelAll(clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefix := clientID + "/"
	for k, t := range s.timers {
		if strings.HasPrefix(k, prefix) {
			t.Stop()
			delete(s.timers, k)
		}
	}
}

// ScheduleJamat arms reminders for every alarm-enabled prayer of the given
// mosque, using the client's reminder lead. Maghrib rides on the sheet's
// sunset string. Prayers with missing or unparseable times are skipped;
// disabled prayers are cancelled.
func (s *Scheduler) ScheduleJamat(clientID string, mosque model.Mosque, prefs model.Settings, loc *time.Location) {
	if !prefs.Alarms.Enabled {
		s.CancelAll(clientID)
		return
	}

	lead := time.Duration(prefs.Notifications.ReminderMinutes) * time.Minute
	today := s.now()

	entries := []struct {
		prayer  string
		raw     string
		enabled bool
	}{
		{"fajr", mosque.JamatTimes.Fajr, prefs.Alarms.Fajr},
		{"dhuhr", mosque.JamatTimes.Dhuhr, prefs.Alarms.Dhuhr},
		{"asr", mosque.JamatTimes.Asr, prefs.Alarms.Asr},
		{"maghrib", mosque.JamatTimes.Sunset, prefs.Alarms.Maghrib},
		{"isha", mosque.JamatTimes.Isha, prefs.Alarms.Isha},
	}

	for _, e := range entries {
		if !e.enabled {
			s.Cancel(clientID, e.prayer)
			continue
		}
		at, err := timestr.ParseClock(e.raw, today, loc)
		if err != nil {
			continue
		}
		if err := s.Schedule(clientID, e.prayer, at, mosque.Name, lead); err != nil {
			log.Error().Err(err).Str("prayer", e.prayer).Msg("failed to schedule reminder")
		}
	}
}

// MQTTPublisher publishes reminders to per-client topics on the broker.
type MQTTPublisher struct {
	client mqtt.Client
}

// NewMQTTPublisher connects to the broker. The connection is shared by all
// clients; per-client routing happens through topics.
func NewMQTTPublisher(brokerURL, clientName string) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientName)
	opts.OnConnect = func(mqtt.Client) {
		log.Info().Msg("connected to MQTT broker")
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		log.Error().Err(err).Msg("MQTT connection lost")
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return &MQTTPublisher{client: client}, nil
}

// Publish sends the payload to the client's alarm topic at QoS 1.
func (p *MQTTPublisher) Publish(clientID string, payload []byte) error {
	topic := fmt.Sprintf("minaret/%s/alarms", clientID)
	token := p.client.Publish(topic, 1, false, payload)
	token.Wait()
	if token.Error() != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, token.Error())
	}
	return nil
}
