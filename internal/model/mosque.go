package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// JamatTimes holds the caretaker-reported congregational times for a mosque.
// Values are free-form human-entered strings ("5:30 AM", "13:45", ""); an
// empty or unparseable entry means "no data" and must never crash a consumer.
type JamatTimes struct {
	Fajr   string `json:"fajr"`
	Dhuhr  string `json:"dhuhr"`
	Asr    string `json:"asr"`
	Sunset string `json:"sunset"`
	Isha   string `json:"isha"`
	Jumuah string `json:"jumuah"`
}

// Value serializes jamat times to JSON for a jsonb column.
func (j JamatTimes) Value() (driver.Value, error) {
	return json.Marshal(j)
}

// Scan reads jamat times back from a jsonb column.
func (j *JamatTimes) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	case nil:
		*j = JamatTimes{}
		return nil
	}
	return errors.New("jamat times: unsupported scan source")
}

// StringList is an ordered list of strings stored as jsonb.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		s = StringList{}
	}
	return json.Marshal(s)
}

func (s *StringList) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	case nil:
		*s = nil
		return nil
	}
	return errors.New("string list: unsupported scan source")
}

// Mosque is a directory record. Records are created at load time and are
// effectively immutable; Distance is derived during ranking and is not part
// of the stored record.
type Mosque struct {
	ID          int        `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Address     string     `db:"address" json:"address"`
	Latitude    float64    `db:"latitude" json:"latitude"`
	Longitude   float64    `db:"longitude" json:"longitude"`
	JamatTimes  JamatTimes `db:"jamat_times" json:"jamatTimes"`
	Capacity    int        `db:"capacity" json:"capacity"`
	Facilities  StringList `db:"facilities" json:"facilities"`
	LastUpdated string     `db:"last_updated" json:"lastUpdated"`
}

// Coordinate returns the mosque position.
func (m Mosque) Coordinate() Coordinate {
	return Coordinate{Latitude: m.Latitude, Longitude: m.Longitude}
}

// RankedMosque is a mosque with its distance from a reference point attached.
type RankedMosque struct {
	Mosque
	DistanceKm        float64 `json:"distanceKm"`
	FormattedDistance string  `json:"formattedDistance"`
}
