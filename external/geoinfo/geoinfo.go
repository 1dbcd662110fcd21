package geoinfo

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/frilo-app/frilo-api/schema"
)

const (
	logPrefix      = "geoinfo"
	defaultTimeout = 5 * time.Second
)

var (
	ErrNoResult = errors.New("no geocoding result")
)

// Prediction is one place suggestion for a partial input
type Prediction struct {
	PlaceID       string `json:"placeId"`
	Description   string `json:"description"`
	MainText      string `json:"mainText"`
	SecondaryText string `json:"secondaryText"`
}

// Place is the resolved detail of a place id
type Place struct {
	PlaceID  string          `json:"placeId"`
	Name     string          `json:"name"`
	Address  string          `json:"address"`
	Location schema.Location `json:"location"`
}

// GeoInfo - interface to operate google maps
type GeoInfo interface {
	ReverseGeocode(loc schema.Location, language string) (string, error)
	Autocomplete(input, language string) ([]Prediction, error)
	PlaceDetails(placeID, language string) (*Place, error)
}

type geoInfo struct {
	client *maps.Client
}

// ReverseGeocode returns the formatted address of the closest result
func (g geoInfo) ReverseGeocode(loc schema.Location, language string) (string, error) {
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"lat":    loc.Latitude,
		"lng":    loc.Longitude,
	}).Debug("query geo info")

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{
			Lat: loc.Latitude,
			Lng: loc.Longitude,
		},
		Language: language,
	})
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", ErrNoResult
	}
	return results[0].FormattedAddress, nil
}

func (g geoInfo) Autocomplete(input, language string) ([]Prediction, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	resp, err := g.client.PlaceAutocomplete(ctx, &maps.PlaceAutocompleteRequest{
		Input:    input,
		Language: language,
	})
	if err != nil {
		return nil, err
	}

	predictions := make([]Prediction, 0, len(resp.Predictions))
	for _, p := range resp.Predictions {
		predictions = append(predictions, Prediction{
			PlaceID:       p.PlaceID,
			Description:   p.Description,
			MainText:      p.StructuredFormatting.MainText,
			SecondaryText: p.StructuredFormatting.SecondaryText,
		})
	}
	return predictions, nil
}

func (g geoInfo) PlaceDetails(placeID, language string) (*Place, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	resp, err := g.client.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID:  placeID,
		Language: language,
	})
	if err != nil {
		return nil, err
	}

	return &Place{
		PlaceID: resp.PlaceID,
		Name:    resp.Name,
		Address: resp.FormattedAddress,
		Location: schema.Location{
			Latitude:  resp.Geometry.Location.Lat,
			Longitude: resp.Geometry.Location.Lng,
		},
	}, nil
}

// New - new GeoInfo interface
func New(apiKey string, options ...maps.ClientOption) (GeoInfo, error) {
	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, options...)...)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new map client")

		return nil, err
	}

	return &geoInfo{
		client: client,
	}, nil
}
