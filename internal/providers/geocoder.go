package providers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"ulascansenturk/weather-report/internal/weather"
)

const geocoderName = "open-meteo-geocoding"

type geocodingResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Admin1    string  `json:"admin1"`
		Country   string  `json:"country"`
	} `json:"results"`
}

type OpenMeteoGeocoder struct {
	client *resty.Client
}

func NewOpenMeteoGeocoder(baseURL string) *OpenMeteoGeocoder {
	return &OpenMeteoGeocoder{client: newHTTPClient(geocoderName, baseURL)}
}

// Geocode resolves location to its best match. Every failure, including a
// transport error, is reported as weather.ErrLocationNotFound.
func (g *OpenMeteoGeocoder) Geocode(ctx context.Context, location string) (Coordinates, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"name":     location,
			"count":    "1",
			"language": "en",
			"format":   "json",
		}).
		Get("/v1/search")
	if err != nil {
		log.Debug().Err(err).Str("location", location).Msg("geocoding request failed")
		return Coordinates{}, fmt.Errorf("%w: %s", weather.ErrLocationNotFound, location)
	}
	if resp.IsError() {
		log.Debug().Int("status", resp.StatusCode()).Str("location", location).Msg("geocoding returned error status")
		return Coordinates{}, fmt.Errorf("%w: %s", weather.ErrLocationNotFound, location)
	}

	var payload geocodingResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil || len(payload.Results) == 0 {
		return Coordinates{}, fmt.Errorf("%w: %s", weather.ErrLocationNotFound, location)
	}

	r := payload.Results[0]
	return Coordinates{
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Name:      r.Name,
		Region:    r.Admin1,
		Country:   r.Country,
	}, nil
}
