// Package settings is the process-wide preference service. Every component
// reads and writes preferences through it so default filling stays in one
// place; nothing else touches the raw key-value store.
package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/qiblatech/minaret/internal/model"
	"github.com/qiblatech/minaret/internal/prayer"
	"github.com/qiblatech/minaret/internal/redis"
)

// KV is the backing key-value store. The redis package satisfies it in
// production; tests use a map.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
	Missing(err error) bool
}

// Defaults returns the documented default preference set, used whenever a
// client has no stored settings or a stored blob is missing keys.
func Defaults() model.Settings {
	return model.Settings{
		Theme:             "light",
		Language:          "en",
		CalculationMethod: "MWL",
		Notifications: model.NotificationSettings{
			Enabled:         false,
			ReminderMinutes: 5,
		},
		Alarms: model.AlarmSettings{
			Enabled: false,
			Fajr:    true,
			Dhuhr:   true,
			Asr:     true,
			Maghrib: true,
			Isha:    true,
		},
		Location: model.LocationSettings{
			AutoDetect: true,
		},
	}
}

// Service loads and saves per-client settings and the saved "my mosque" id.
type Service struct {
	kv KV
}

func NewService(kv KV) *Service {
	return &Service{kv: kv}
}

// NewRedisService builds a service over the shared redis client.
func NewRedisService() *Service {
	return &Service{kv: redisKV{}}
}

func settingsKey(clientID string) string { return "settings:" + clientID }
func mosqueKey(clientID string) string   { return "mymosque:" + clientID }

// Load returns the client's settings with defaults filled for any key the
// stored blob does not carry.
func (s *Service) Load(ctx context.Context, clientID string) (model.Settings, error) {
	out := Defaults()

	raw, err := s.kv.Get(ctx, settingsKey(clientID))
	if err != nil {
		if s.kv.Missing(err) {
			return out, nil
		}
		return out, fmt.Errorf("load settings: %w", err)
	}

	// Unmarshal over the defaults: keys absent from the blob keep their
	// default values.
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return Defaults(), fmt.Errorf("load settings: %w", err)
	}
	return out, nil
}

// Save merges a partial JSON document over the client's current settings and
// persists the result. Keys absent from partial are left as they were.
func (s *Service) Save(ctx context.Context, clientID string, partial []byte) (model.Settings, error) {
	current, err := s.Load(ctx, clientID)
	if err != nil {
		return model.Settings{}, err
	}

	if err := json.Unmarshal(partial, &current); err != nil {
		return model.Settings{}, fmt.Errorf("save settings: %w", err)
	}

	// A bogus method would poison every later prayer computation that uses
	// the stored value as its default; reject it here.
	if _, err := prayer.ParseMethod(current.CalculationMethod); err != nil {
		return model.Settings{}, fmt.Errorf("save settings: %w", err)
	}

	blob, err := json.Marshal(current)
	if err != nil {
		return model.Settings{}, fmt.Errorf("save settings: %w", err)
	}
	if err := s.kv.Set(ctx, settingsKey(clientID), string(blob)); err != nil {
		return model.Settings{}, fmt.Errorf("save settings: %w", err)
	}
	return current, nil
}

// MyMosque returns the client's saved mosque id, with false when none is set.
func (s *Service) MyMosque(ctx context.Context, clientID string) (int, bool, error) {
	raw, err := s.kv.Get(ctx, mosqueKey(clientID))
	if err != nil {
		if s.kv.Missing(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("load my mosque: %w", err)
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, nil
	}
	return id, true, nil
}

// SetMyMosque saves the client's mosque id.
func (s *Service) SetMyMosque(ctx context.Context, clientID string, mosqueID int) error {
	return s.kv.Set(ctx, mosqueKey(clientID), strconv.Itoa(mosqueID))
}

// ClearMyMosque removes the saved mosque.
func (s *Service) ClearMyMosque(ctx context.Context, clientID string) error {
	return s.kv.Del(ctx, mosqueKey(clientID))
}

// redisKV adapts the shared redis client to the KV interface.
type redisKV struct{}

func (redisKV) Get(ctx context.Context, key string) (string, error) {
	return redis.Get(ctx, key)
}

func (redisKV) Set(ctx context.Context, key, value string) error {
	return redis.Set(ctx, key, value, 0)
}

func (redisKV) Del(ctx context.Context, key string) error {
	return redis.Del(ctx, key)
}

func (redisKV) Missing(err error) bool {
	return redis.IsMissing(err)
}
