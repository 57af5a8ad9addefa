package providers

import (
	"context"

	"ulascansenturk/weather-report/internal/weather"
)

// WeatherProvider is implemented by every source the aggregator can query.
type WeatherProvider interface {
	Name() string
	FetchCurrentAndForecast(ctx context.Context, location string) (weather.Weather, error)
}

type OneLineProvider interface {
	FetchOneLine(ctx context.Context, location string) (string, error)
}

type Coordinates struct {
	Latitude  float64
	Longitude float64
	Name      string
	Region    string
	Country   string
}

type Geocoder interface {
	Geocode(ctx context.Context, location string) (Coordinates, error)
}
