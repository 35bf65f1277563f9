package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qiblatech/minaret/internal/model"
)

var coord = model.Coordinate{Latitude: 24.8015, Longitude: 67.0785}

func clientFor(handler http.HandlerFunc) (*Client, func()) {
	srv := httptest.NewServer(handler)
	c := NewClient()
	c.BaseURL = srv.URL
	return c, srv.Close
}

func TestPlaceName_PrefersCity(t *testing.T) {
	c, done := clientFor(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"address":{"city":"Karachi","town":"X","suburb":"Y"}}`))
	})
	defer done()

	assert.Equal(t, "Karachi", c.PlaceName(context.Background(), coord))
}

func TestPlaceName_FallsThroughTownAndSuburb(t *testing.T) {
	c, done := clientFor(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"address":{"suburb":"DHA Phase 6"}}`))
	})
	defer done()

	assert.Equal(t, "DHA Phase 6", c.PlaceName(context.Background(), coord))
}

func TestPlaceName_PlaceholderOnFailure(t *testing.T) {
	c, done := clientFor(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	defer done()
	assert.Equal(t, Placeholder, c.PlaceName(context.Background(), coord))

	c2, done2 := clientFor(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})
	defer done2()
	assert.Equal(t, Placeholder, c2.PlaceName(context.Background(), coord))

	c3, done3 := clientFor(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"address":{}}`))
	})
	defer done3()
	assert.Equal(t, Placeholder, c3.PlaceName(context.Background(), coord))
}
