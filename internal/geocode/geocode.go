// Package geocode resolves a coordinate to a human-readable place name via
// the Nominatim reverse endpoint. Lookups are cosmetic: any failure yields a
// placeholder label and never blocks prayer or mosque computation.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/qiblatech/minaret/internal/model"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

// Placeholder is returned whenever a lookup fails.
const Placeholder = "Your Location"

// Client calls the Nominatim reverse-geocoding API.
type Client struct {
	httpClient *http.Client
	// BaseURL is exported for testing with httptest.
	BaseURL string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		BaseURL: defaultBaseURL,
	}
}

type reverseResponse struct {
	Address struct {
		City   string `json:"city"`
		Town   string `json:"town"`
		Suburb string `json:"suburb"`
	} `json:"address"`
}

// PlaceName returns the best-effort locality name for the coordinate:
// city, then town, then suburb, then the placeholder.
func (c *Client) PlaceName(ctx context.Context, coord model.Coordinate) string {
	url := fmt.Sprintf("%s/reverse?lat=%f&lon=%f&format=json",
		c.BaseURL, coord.Latitude, coord.Longitude)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Placeholder
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug().Err(err).Msg("reverse geocode failed")
		return Placeholder
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Debug().Int("status", resp.StatusCode).Msg("reverse geocode non-200")
		return Placeholder
	}

	var parsed reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Placeholder
	}

	switch {
	case parsed.Address.City != "":
		return parsed.Address.City
	case parsed.Address.Town != "":
		return parsed.Address.Town
	case parsed.Address.Suburb != "":
		return parsed.Address.Suburb
	}
	return Placeholder
}
