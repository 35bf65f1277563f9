package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errMissing = errors.New("missing")

type mapKV struct {
	data map[string]string
}

func newMapKV() *mapKV { return &mapKV{data: map[string]string{}} }

func (m *mapKV) Get(_ context.Context, key string) (string, error) {
	v, ok := m.data[key]
	if !ok {
		return "", errMissing
	}
	return v, nil
}

func (m *mapKV) Set(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

func (m *mapKV) Del(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *mapKV) Missing(err error) bool { return errors.Is(err, errMissing) }

func TestLoad_DefaultsWhenUnset(t *testing.T) {
	svc := NewService(newMapKV())

	got, err := svc.Load(context.Background(), "client-1")
	assert.NoError(t, err)
	assert.Equal(t, Defaults(), got)
	assert.Equal(t, "light", got.Theme)
	assert.Equal(t, "en", got.Language)
	assert.Equal(t, "MWL", got.CalculationMethod)
	assert.Equal(t, 5, got.Notifications.ReminderMinutes)
	assert.True(t, got.Alarms.Fajr)
	assert.True(t, got.Location.AutoDetect)
}

func TestSave_PartialMergesOverDefaults(t *testing.T) {
	svc := NewService(newMapKV())
	ctx := context.Background()

	saved, err := svc.Save(ctx, "client-1", []byte(`{"theme":"dark","calculationMethod":"Karachi"}`))
	assert.NoError(t, err)
	assert.Equal(t, "dark", saved.Theme)
	assert.Equal(t, "Karachi", saved.CalculationMethod)
	// Untouched keys keep their defaults.
	assert.Equal(t, "en", saved.Language)
	assert.Equal(t, 5, saved.Notifications.ReminderMinutes)

	loaded, err := svc.Load(ctx, "client-1")
	assert.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestSave_NestedPartial(t *testing.T) {
	svc := NewService(newMapKV())
	ctx := context.Background()

	_, err := svc.Save(ctx, "c", []byte(`{"notifications":{"enabled":true}}`))
	assert.NoError(t, err)

	got, err := svc.Load(ctx, "c")
	assert.NoError(t, err)
	assert.True(t, got.Notifications.Enabled)
	assert.Equal(t, 5, got.Notifications.ReminderMinutes, "reminder survives a partial notifications update")
}

func TestSave_RejectsUnknownCalculationMethod(t *testing.T) {
	svc := NewService(newMapKV())
	ctx := context.Background()

	_, err := svc.Save(ctx, "c", []byte(`{"calculationMethod":"Atlantis"}`))
	assert.Error(t, err)

	// Nothing was persisted; the client still loads defaults.
	got, err := svc.Load(ctx, "c")
	assert.NoError(t, err)
	assert.Equal(t, "MWL", got.CalculationMethod)
}

func TestSave_RejectsMalformedJSON(t *testing.T) {
	svc := NewService(newMapKV())
	_, err := svc.Save(context.Background(), "c", []byte(`{not json`))
	assert.Error(t, err)
}

func TestLoad_CorruptBlobFallsBackToDefaults(t *testing.T) {
	kv := newMapKV()
	kv.data["settings:c"] = "{corrupt"
	svc := NewService(kv)

	got, err := svc.Load(context.Background(), "c")
	assert.Error(t, err)
	assert.Equal(t, Defaults(), got)
}

func TestMyMosqueRoundTrip(t *testing.T) {
	svc := NewService(newMapKV())
	ctx := context.Background()

	_, ok, err := svc.MyMosque(ctx, "c")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, svc.SetMyMosque(ctx, "c", 3))
	id, ok, err := svc.MyMosque(ctx, "c")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, id)

	assert.NoError(t, svc.ClearMyMosque(ctx, "c"))
	_, ok, err = svc.MyMosque(ctx, "c")
	assert.NoError(t, err)
	assert.False(t, ok)
}
