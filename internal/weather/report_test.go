package weather_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ulascansenturk/weather-report/internal/weather"
)

func sampleWeather(days int) weather.Weather {
	forecast := make([]weather.ForecastDay, 0, days)
	for i := 0; i < days; i++ {
		forecast = append(forecast, weather.ForecastDay{
			Date:      fmt.Sprintf("2026-10-%02d", 17+i),
			HighF:     80 + i,
			LowF:      60 + i,
			Condition: "Sunny",
		})
	}

	return weather.NewWeather(
		weather.Location{City: "San Diego", Region: "California", Country: "United States of America"},
		weather.Current{
			Condition:       "Sunny",
			TempF:           75,
			TempC:           24,
			FeelsLikeF:      75,
			FeelsLikeC:      24,
			HumidityPct:     60,
			WindMph:         5,
			WindDirection:   "NW",
			UVIndex:         3,
			VisibilityMiles: 10,
		},
		forecast,
		weather.ProviderPrimary,
	)
}

func TestNewWeatherCapsForecast(t *testing.T) {
	w := sampleWeather(5)
	assert.Len(t, w.Forecast(), weather.MaxForecastDays)
}

func TestWeatherForecastIsCopied(t *testing.T) {
	days := []weather.ForecastDay{{Date: "2026-10-17", HighF: 80, LowF: 60, Condition: "Sunny"}}
	w := weather.NewWeather(weather.Location{City: "X"}, weather.Current{}, days, weather.ProviderFallback)

	days[0].Condition = "Changed"
	got := w.Forecast()
	got[0].HighF = 0

	assert.Equal(t, "Sunny", w.Forecast()[0].Condition)
	assert.Equal(t, 80, w.Forecast()[0].HighF)
}

func TestReportSuccessAndFailureAreExclusive(t *testing.T) {
	ok := weather.Success(sampleWeather(1))
	w, isWeather := ok.Weather()
	assert.True(t, isWeather)
	assert.False(t, ok.IsError())
	assert.Empty(t, ok.Err())
	assert.Equal(t, weather.ProviderPrimary, w.Provider())

	failed := weather.Failure("boom")
	_, isWeather = failed.Weather()
	assert.False(t, isWeather)
	assert.True(t, failed.IsError())
	assert.Equal(t, "boom", failed.Err())
}

func TestReportJSON(t *testing.T) {
	data, err := json.Marshal(weather.Success(sampleWeather(2)))
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.NotContains(t, payload, "error")
	assert.Equal(t, "primary", payload["provider"])
	assert.Equal(t, "San Diego", payload["location"].(map[string]interface{})["city"])
	current := payload["current"].(map[string]interface{})
	assert.EqualValues(t, 75, current["temp_f"])
	assert.EqualValues(t, 60, current["humidity_pct"])
	assert.Equal(t, "NW", current["wind_direction"])
	assert.Len(t, payload["forecast"], 2)

	data, err = json.Marshal(weather.Failure("no data"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"no data"}`, string(data))
}

func TestReportJSONWithoutForecast(t *testing.T) {
	data, err := json.Marshal(weather.Success(sampleWeather(3)).WithoutForecast())
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.NotContains(t, payload, "forecast")
	assert.Contains(t, payload, "current")
}

func TestReportUnmarshalJSON(t *testing.T) {
	original := weather.Success(sampleWeather(3))
	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded weather.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)

	require.NoError(t, json.Unmarshal([]byte(`{"error":"x"}`), &decoded))
	assert.Equal(t, "x", decoded.Err())
}

func TestBothProvidersFailedError(t *testing.T) {
	primary := fmt.Errorf("%w from wttr.in: status code 503", weather.ErrNetwork)
	fallback := fmt.Errorf("%w: Atlantis", weather.ErrLocationNotFound)
	err := &weather.BothProvidersFailedError{Primary: primary, Fallback: fallback}

	assert.Equal(t,
		"failed to fetch weather from wttr.in: status code 503 | Fallback also failed: Could not find location: Atlantis",
		err.Error())
	assert.True(t, errors.Is(err, weather.ErrNetwork))
	assert.True(t, errors.Is(err, weather.ErrLocationNotFound))
	assert.False(t, errors.Is(err, weather.ErrMalformedResponse))
}
