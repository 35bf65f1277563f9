package packets

type RegisterRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Name     *string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateJamatRequest corrects a mosque's reported jamat times. Values are
// raw strings exactly as a caretaker would enter them.
type UpdateJamatRequest struct {
	Fajr        string `json:"fajr"`
	Dhuhr       string `json:"dhuhr"`
	Asr         string `json:"asr"`
	Sunset      string `json:"sunset"`
	Isha        string `json:"isha"`
	Jumuah      string `json:"jumuah"`
	LastUpdated string `json:"lastUpdated"`
}
