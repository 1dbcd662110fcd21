package geoinfo_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"googlemaps.github.io/maps"

	"github.com/frilo-app/frilo-api/external/geoinfo"
	"github.com/frilo-app/frilo-api/schema"
)

func newTestServer(body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
}

func TestReverseGeocode(t *testing.T) {
	ts := newTestServer(`{"status":"OK","results":[{"formatted_address":"Dizengoff St 50, Tel Aviv"}]}`)
	defer ts.Close()

	g, err := geoinfo.New("test-key", maps.WithBaseURL(ts.URL))
	assert.NoError(t, err)

	address, err := g.ReverseGeocode(schema.Location{Latitude: 32.0775, Longitude: 34.7748}, "en")
	assert.NoError(t, err)
	assert.Equal(t, "Dizengoff St 50, Tel Aviv", address)
}

func TestReverseGeocodeNoResult(t *testing.T) {
	ts := newTestServer(`{"status":"OK","results":[]}`)
	defer ts.Close()

	g, err := geoinfo.New("test-key", maps.WithBaseURL(ts.URL))
	assert.NoError(t, err)

	_, err = g.ReverseGeocode(schema.Location{Latitude: 1, Longitude: 2}, "en")
	assert.ErrorIs(t, err, geoinfo.ErrNoResult)
}

func TestAutocomplete(t *testing.T) {
	ts := newTestServer(`{"status":"OK","predictions":[{"place_id":"abc","description":"Haifa, Israel","structured_formatting":{"main_text":"Haifa","secondary_text":"Israel"}}]}`)
	defer ts.Close()

	g, err := geoinfo.New("test-key", maps.WithBaseURL(ts.URL))
	assert.NoError(t, err)

	predictions, err := g.Autocomplete("hai", "en")
	assert.NoError(t, err)
	assert.Len(t, predictions, 1)
	assert.Equal(t, "abc", predictions[0].PlaceID)
	assert.Equal(t, "Haifa", predictions[0].MainText)
}

func TestPlaceDetails(t *testing.T) {
	ts := newTestServer(`{"status":"OK","result":{"place_id":"abc","name":"Haifa","formatted_address":"Haifa, Israel","geometry":{"location":{"lat":32.79,"lng":34.98}}}}`)
	defer ts.Close()

	g, err := geoinfo.New("test-key", maps.WithBaseURL(ts.URL))
	assert.NoError(t, err)

	place, err := g.PlaceDetails("abc", "en")
	assert.NoError(t, err)
	assert.Equal(t, "Haifa, Israel", place.Address)
	assert.Equal(t, 32.79, place.Location.Latitude)
	assert.Equal(t, 34.98, place.Location.Longitude)
}
