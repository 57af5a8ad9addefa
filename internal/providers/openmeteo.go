package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"

	"ulascansenturk/weather-report/internal/weather"
)

const (
	openMeteoName = "open-meteo"

	currentVariables = "temperature_2m,relative_humidity_2m,apparent_temperature,weather_code,wind_speed_10m,wind_direction_10m"
	dailyVariables   = "weather_code,temperature_2m_max,temperature_2m_min"
)

type OpenMeteoProvider struct {
	geocoder Geocoder
	client   *resty.Client
}

// NewOpenMeteoProvider returns the fallback provider. It needs coordinates,
// so every fetch geocodes the location first.
func NewOpenMeteoProvider(baseURL string, geocoder Geocoder) *OpenMeteoProvider {
	return &OpenMeteoProvider{
		geocoder: geocoder,
		client:   newHTTPClient(openMeteoName, baseURL),
	}
}

func (p *OpenMeteoProvider) Name() string {
	return openMeteoName
}

func (p *OpenMeteoProvider) FetchCurrentAndForecast(ctx context.Context, location string) (weather.Weather, error) {
	coords, err := p.geocoder.Geocode(ctx, location)
	if err != nil {
		if errors.Is(err, weather.ErrLocationNotFound) {
			return weather.Weather{}, err
		}
		return weather.Weather{}, fmt.Errorf("%w: %s", weather.ErrLocationNotFound, location)
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"latitude":         strconv.FormatFloat(coords.Latitude, 'f', -1, 64),
			"longitude":        strconv.FormatFloat(coords.Longitude, 'f', -1, 64),
			"current":          currentVariables,
			"daily":            dailyVariables,
			"temperature_unit": "fahrenheit",
			"wind_speed_unit":  "mph",
			"timezone":         "auto",
			"forecast_days":    strconv.Itoa(weather.MaxForecastDays),
		}).
		Get("/v1/forecast")
	if err != nil {
		return weather.Weather{}, fmt.Errorf("%w from %s: %v", weather.ErrNetwork, openMeteoName, err)
	}
	if resp.IsError() {
		return weather.Weather{}, fmt.Errorf("%w from %s: status code %d", weather.ErrNetwork, openMeteoName, resp.StatusCode())
	}

	var payload OpenMeteoResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return weather.Weather{}, fmt.Errorf("%w from %s: %v", weather.ErrMalformedResponse, openMeteoName, err)
	}

	w, err := Normalize(coords, payload)
	if err != nil {
		return weather.Weather{}, fmt.Errorf("%w from %s: %v", weather.ErrMalformedResponse, openMeteoName, err)
	}
	return w, nil
}
