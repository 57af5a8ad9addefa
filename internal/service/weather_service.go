package service

import (
	"context"
	"errors"
	"strings"

	"ulascansenturk/weather-report/internal/providers"
	"ulascansenturk/weather-report/internal/report"
	"ulascansenturk/weather-report/internal/weather"
)

var ErrEmptyLocation = errors.New("location cannot be empty")

type WeatherService interface {
	GetWeather(ctx context.Context, location string, includeForecast bool) weather.Report
	Report(ctx context.Context, location string) (string, error)
	Forecast(ctx context.Context, location string, days int) (string, error)
	OneLine(ctx context.Context, location string) (string, error)
}

type weatherService struct {
	aggregator WeatherRequestAggregator
	oneLine    providers.OneLineProvider
}

func NewWeatherService(aggregator WeatherRequestAggregator, oneLine providers.OneLineProvider) WeatherService {
	return &weatherService{
		aggregator: aggregator,
		oneLine:    oneLine,
	}
}

// GetWeather never returns a Go error: failures come back as an error Report
// so callers can serialize the result as-is.
func (s *weatherService) GetWeather(ctx context.Context, location string, includeForecast bool) weather.Report {
	r := s.fetch(ctx, location)
	if !includeForecast {
		return r.WithoutForecast()
	}
	return r
}

// Report and Forecast always return the rendered text, which reads
// "Error: <message>" on failure; the error is set in that case too.
func (s *weatherService) Report(ctx context.Context, location string) (string, error) {
	r := s.fetch(ctx, location)
	return report.FormatReport(r), reportErr(r)
}

func (s *weatherService) Forecast(ctx context.Context, location string, days int) (string, error) {
	r := s.fetch(ctx, location)
	return report.FormatForecast(r, days), reportErr(r)
}

func (s *weatherService) OneLine(ctx context.Context, location string) (string, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return "", ErrEmptyLocation
	}
	return s.oneLine.FetchOneLine(ctx, location)
}

func reportErr(r weather.Report) error {
	if !r.IsError() {
		return nil
	}
	return errors.New(r.Err())
}

func (s *weatherService) fetch(ctx context.Context, location string) weather.Report {
	location = strings.TrimSpace(location)
	if location == "" {
		return weather.FailureFromError(ErrEmptyLocation)
	}
	return s.aggregator.Fetch(ctx, location)
}
