package providers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"ulascansenturk/weather-report/internal/mocks"
	"ulascansenturk/weather-report/internal/providers"
	"ulascansenturk/weather-report/internal/weather"
)

const forecastBody = `{
  "current": {
    "temperature_2m": 75.4,
    "relative_humidity_2m": 61,
    "apparent_temperature": 77.6,
    "weather_code": 3,
    "wind_speed_10m": 4.6,
    "wind_direction_10m": 10
  },
  "daily": {
    "time": ["2026-10-17", "2026-10-18", "2026-10-19"],
    "weather_code": [3, 61, 0],
    "temperature_2m_max": [80.2, 78.5, 74.4],
    "temperature_2m_min": [62.1, 61.5, 59.9]
  }
}`

type OpenMeteoProviderTestSuite struct {
	suite.Suite
	server   *httptest.Server
	geocoder *mocks.MockGeocoder
	provider *providers.OpenMeteoProvider
}

func (s *OpenMeteoProviderTestSuite) SetupTest() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if r.URL.Path != "/v1/forecast" ||
			q.Get("temperature_unit") != "fahrenheit" ||
			q.Get("wind_speed_unit") != "mph" ||
			q.Get("timezone") != "auto" ||
			q.Get("forecast_days") != "3" ||
			q.Get("current") != "temperature_2m,relative_humidity_2m,apparent_temperature,weather_code,wind_speed_10m,wind_direction_10m" ||
			q.Get("daily") != "weather_code,temperature_2m_max,temperature_2m_min" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch fmt.Sprintf("%s,%s", q.Get("latitude"), q.Get("longitude")) {
		case "32.71571,-117.16472":
			w.Write([]byte(forecastBody))
		case "1,1":
			w.Write([]byte(`{"current": {"temperature_2m": 60}, "daily": {"time": ["2026-10-17", "2026-10-18"], "weather_code": [1], "temperature_2m_max": [1, 2], "temperature_2m_min": [1, 2]}}`))
		case "2,2":
			w.Write([]byte(`not json`))
		case "4,4":
			w.Write([]byte(`{"current": {"temperature_2m": 60}, "daily": {"time": ["2026-10-17", "2026-10-18"], "weather_code": [null, 3], "temperature_2m_max": [null, 70], "temperature_2m_min": [null, 50]}}`))
		default:
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))

	s.geocoder = mocks.NewMockGeocoder(s.T())
	s.provider = providers.NewOpenMeteoProvider(s.server.URL, s.geocoder)
}

func (s *OpenMeteoProviderTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *OpenMeteoProviderTestSuite) TestFetchCurrentAndForecast_Success() {
	s.geocoder.On("Geocode", mock.Anything, "San Diego").Return(providers.Coordinates{
		Latitude:  32.71571,
		Longitude: -117.16472,
		Name:      "San Diego",
		Region:    "California",
		Country:   "United States",
	}, nil)

	w, err := s.provider.FetchCurrentAndForecast(context.Background(), "San Diego")
	s.Require().NoError(err)

	s.Equal(weather.ProviderFallback, w.Provider())
	s.Equal(weather.Location{City: "San Diego", Region: "California", Country: "United States"}, w.Location())

	cur := w.Current()
	s.Equal(75, cur.TempF)
	s.Equal(24, cur.TempC)
	s.Equal(78, cur.FeelsLikeF)
	s.Equal(26, cur.FeelsLikeC)
	s.Equal(61, cur.HumidityPct)
	s.Equal(5, cur.WindMph)
	s.Equal("N", cur.WindDirection)
	s.Equal("Overcast", cur.Condition)
	s.Equal(0, cur.UVIndex)
	s.Equal(10, cur.VisibilityMiles)

	s.Equal([]weather.ForecastDay{
		{Date: "2026-10-17", HighF: 80, LowF: 62, Condition: "Overcast"},
		{Date: "2026-10-18", HighF: 79, LowF: 62, Condition: "Slight rain"},
		{Date: "2026-10-19", HighF: 74, LowF: 60, Condition: "Clear sky"},
	}, w.Forecast())
}

func (s *OpenMeteoProviderTestSuite) TestFetchCurrentAndForecast_LocationNotFound() {
	s.geocoder.On("Geocode", mock.Anything, "Atlantis").
		Return(providers.Coordinates{}, fmt.Errorf("%w: %s", weather.ErrLocationNotFound, "Atlantis"))

	_, err := s.provider.FetchCurrentAndForecast(context.Background(), "Atlantis")
	s.Error(err)
	s.Equal("Could not find location: Atlantis", err.Error())
}

func (s *OpenMeteoProviderTestSuite) TestFetchCurrentAndForecast_GeocoderOtherErrorIsNotFound() {
	s.geocoder.On("Geocode", mock.Anything, "Atlantis").Return(providers.Coordinates{}, errors.New("dial tcp: refused"))

	_, err := s.provider.FetchCurrentAndForecast(context.Background(), "Atlantis")
	s.True(errors.Is(err, weather.ErrLocationNotFound))
	s.Equal("Could not find location: Atlantis", err.Error())
}

func (s *OpenMeteoProviderTestSuite) TestFetchCurrentAndForecast_MismatchedDailyArrays() {
	s.geocoder.On("Geocode", mock.Anything, "Mismatch").Return(providers.Coordinates{Latitude: 1, Longitude: 1, Name: "Mismatch"}, nil)

	_, err := s.provider.FetchCurrentAndForecast(context.Background(), "Mismatch")
	s.Error(err)
	s.True(errors.Is(err, weather.ErrMalformedResponse))
	s.Contains(err.Error(), "open-meteo")
}

func (s *OpenMeteoProviderTestSuite) TestFetchCurrentAndForecast_NullDailyValue() {
	s.geocoder.On("Geocode", mock.Anything, "Gaps").Return(providers.Coordinates{Latitude: 4, Longitude: 4, Name: "Gaps"}, nil)

	_, err := s.provider.FetchCurrentAndForecast(context.Background(), "Gaps")
	s.Error(err)
	s.True(errors.Is(err, weather.ErrMalformedResponse))
}

func (s *OpenMeteoProviderTestSuite) TestFetchCurrentAndForecast_NotJSON() {
	s.geocoder.On("Geocode", mock.Anything, "Broken").Return(providers.Coordinates{Latitude: 2, Longitude: 2, Name: "Broken"}, nil)

	_, err := s.provider.FetchCurrentAndForecast(context.Background(), "Broken")
	s.Error(err)
	s.True(errors.Is(err, weather.ErrMalformedResponse))
}

func (s *OpenMeteoProviderTestSuite) TestFetchCurrentAndForecast_UpstreamError() {
	s.geocoder.On("Geocode", mock.Anything, "Down").Return(providers.Coordinates{Latitude: 3, Longitude: 3, Name: "Down"}, nil)

	_, err := s.provider.FetchCurrentAndForecast(context.Background(), "Down")
	s.Error(err)
	s.True(errors.Is(err, weather.ErrNetwork))
	s.Contains(err.Error(), "status code 503")
}

func TestOpenMeteoProviderSuite(t *testing.T) {
	suite.Run(t, new(OpenMeteoProviderTestSuite))
}
