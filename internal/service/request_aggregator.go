package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-report/internal/providers"
	"ulascansenturk/weather-report/internal/weather"
)

type WeatherRequestAggregator interface {
	Fetch(ctx context.Context, location string) weather.Report
}

// weatherAggregator asks the primary provider first and only calls the
// fallback once the primary has failed. The two are never called in parallel.
type weatherAggregator struct {
	primary  providers.WeatherProvider
	fallback providers.WeatherProvider
}

func NewWeatherRequestAggregator(primary, fallback providers.WeatherProvider) WeatherRequestAggregator {
	return &weatherAggregator{
		primary:  primary,
		fallback: fallback,
	}
}

func (w *weatherAggregator) Fetch(ctx context.Context, location string) weather.Report {
	result, primaryErr := w.primary.FetchCurrentAndForecast(ctx, location)
	if primaryErr == nil {
		return weather.Success(result)
	}

	log.Warn().
		Err(primaryErr).
		Str("location", location).
		Str("provider", w.primary.Name()).
		Msgf("primary provider failed, falling back to %s", w.fallback.Name())

	result, fallbackErr := w.fallback.FetchCurrentAndForecast(ctx, location)
	if fallbackErr == nil {
		return weather.Success(result)
	}

	err := &weather.BothProvidersFailedError{Primary: primaryErr, Fallback: fallbackErr}
	log.Error().Err(err).Str("location", location).Msg("all weather providers failed")

	return weather.FailureFromError(err)
}
