package timestr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	day := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		raw     string
		wantH   int
		wantM   int
		wantErr bool
	}{
		{"pm afternoon", "5:30 PM", 17, 30, false},
		{"midnight am", "12:00 AM", 0, 0, false},
		{"noon pm", "12:30 PM", 12, 30, false},
		{"24 hour", "13:45", 13, 45, false},
		{"lowercase marker", "6:15 pm", 18, 15, false},
		{"no space before marker", "7:05AM", 7, 5, false},
		{"garbage", "bad", 0, 0, true},
		{"empty", "", 0, 0, true},
		{"whitespace only", "   ", 0, 0, true},
		{"missing minutes", "7:", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.raw, day, time.UTC)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantH, got.Hour())
			assert.Equal(t, tt.wantM, got.Minute())
			assert.Equal(t, 0, got.Second())
			assert.Equal(t, day.Year(), got.Year())
			assert.Equal(t, day.Month(), got.Month())
			assert.Equal(t, day.Day(), got.Day())
		})
	}
}

func TestParseClock_AnchorsToReferenceDay(t *testing.T) {
	day := time.Date(2026, 7, 4, 9, 30, 0, 0, time.UTC)

	got, err := ParseClock("4:15 PM", day, time.UTC)
	assert.NoError(t, err)
	// Time-of-day on the reference day, independent of the day's own clock.
	assert.Equal(t, time.Date(2026, 7, 4, 16, 15, 0, 0, time.UTC), got)
}
