package model

// NotificationSettings controls the pre-jamat reminder.
type NotificationSettings struct {
	Enabled         bool `json:"enabled"`
	ReminderMinutes int  `json:"reminderMinutes"`
}

// AlarmSettings controls per-prayer adhan alarms.
type AlarmSettings struct {
	Enabled bool `json:"enabled"`
	Fajr    bool `json:"fajr"`
	Dhuhr   bool `json:"dhuhr"`
	Asr     bool `json:"asr"`
	Maghrib bool `json:"maghrib"`
	Isha    bool `json:"isha"`
}

// LocationSettings controls position resolution.
type LocationSettings struct {
	AutoDetect bool     `json:"autoDetect"`
	ManualLat  *float64 `json:"manualLat"`
	ManualLon  *float64 `json:"manualLon"`
}

// Settings is the per-client persisted preference set. Missing keys fill
// with the documented defaults at load time.
type Settings struct {
	Theme             string               `json:"theme"`
	Language          string               `json:"language"`
	CalculationMethod string               `json:"calculationMethod"`
	Notifications     NotificationSettings `json:"notifications"`
	Alarms            AlarmSettings        `json:"alarms"`
	Location          LocationSettings     `json:"location"`
}
