package packets

import "github.com/qiblatech/minaret/internal/model"

// PrayerTimeResponse is one event of the daily set.
type PrayerTimeResponse struct {
	Name       string `json:"name"`
	Time       string `json:"time"`    // RFC3339
	Display    string `json:"display"` // clock face, e.g. "5:17 AM"
	Actionable bool   `json:"actionable"`
}

type PrayerSetResponse struct {
	Date           string               `json:"date"`
	Method         string               `json:"method"`
	Latitude       float64              `json:"latitude"`
	Longitude      float64              `json:"longitude"`
	LocationSource string               `json:"locationSource"`
	Times          []PrayerTimeResponse `json:"times"`
}

type NextPrayerResponse struct {
	Name             string `json:"name"`
	Time             string `json:"time"`
	Display          string `json:"display"`
	Remaining        string `json:"remaining"`
	RemainingSeconds int64  `json:"remainingSeconds"`
}

type MosqueListResponse struct {
	Count          int                  `json:"count"`
	LocationSource string               `json:"locationSource"`
	Mosques        []model.RankedMosque `json:"mosques"`
}

// NextJamatResponse is the countdown block of a mosque detail. A nil value
// in MosqueDetailResponse means the mosque has no usable jamat data.
type NextJamatResponse struct {
	Name             string `json:"name"`
	Time             string `json:"time"`
	Display          string `json:"display"`
	Remaining        string `json:"remaining"`
	RemainingSeconds int64  `json:"remainingSeconds"`
}

type MosqueDetailResponse struct {
	model.Mosque
	DistanceKm        *float64           `json:"distanceKm,omitempty"`
	FormattedDistance string             `json:"formattedDistance,omitempty"`
	NextJamat         *NextJamatResponse `json:"nextJamat"`
	IsMyMosque        bool               `json:"isMyMosque"`
}

type LocationNameResponse struct {
	Name string `json:"name"`
}

type SettingsResponse struct {
	Settings model.Settings `json:"settings"`
	MyMosque *int           `json:"myMosque"`
}

type AlarmScheduleResponse struct {
	Scheduled bool   `json:"scheduled"`
	Mosque    string `json:"mosque"`
}
