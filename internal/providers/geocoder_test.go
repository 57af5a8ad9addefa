package providers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"ulascansenturk/weather-report/internal/providers"
	"ulascansenturk/weather-report/internal/weather"
)

type GeocoderTestSuite struct {
	suite.Suite
	server   *httptest.Server
	geocoder *providers.OpenMeteoGeocoder
}

func (s *GeocoderTestSuite) SetupTest() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if r.URL.Path != "/v1/search" || q.Get("count") != "1" || q.Get("language") != "en" || q.Get("format") != "json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch q.Get("name") {
		case "San Diego":
			w.Write([]byte(`{"results":[{"name":"San Diego","latitude":32.71571,"longitude":-117.16472,"admin1":"California","country":"United States"}]}`))
		case "Nauru":
			w.Write([]byte(`{"results":[{"name":"Nauru","latitude":-0.52,"longitude":166.93}]}`))
		case "Atlantis":
			w.Write([]byte(`{"generationtime_ms":0.5}`))
		case "Garbage":
			w.Write([]byte(`<html>`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))

	s.geocoder = providers.NewOpenMeteoGeocoder(s.server.URL)
}

func (s *GeocoderTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *GeocoderTestSuite) TestGeocode_Success() {
	coords, err := s.geocoder.Geocode(context.Background(), "San Diego")
	s.Require().NoError(err)
	s.Equal(providers.Coordinates{
		Latitude:  32.71571,
		Longitude: -117.16472,
		Name:      "San Diego",
		Region:    "California",
		Country:   "United States",
	}, coords)
}

func (s *GeocoderTestSuite) TestGeocode_MissingRegionAndCountry() {
	coords, err := s.geocoder.Geocode(context.Background(), "Nauru")
	s.Require().NoError(err)
	s.Equal("Nauru", coords.Name)
	s.Empty(coords.Region)
	s.Empty(coords.Country)
}

func (s *GeocoderTestSuite) TestGeocode_FailuresAreNotFound() {
	for _, location := range []string{"Atlantis", "Garbage", "ServerError"} {
		_, err := s.geocoder.Geocode(context.Background(), location)
		s.True(errors.Is(err, weather.ErrLocationNotFound), location)
		s.Equal("Could not find location: "+location, err.Error())
	}
}

func (s *GeocoderTestSuite) TestGeocode_NetworkFailureIsNotFound() {
	s.server.Close()

	_, err := s.geocoder.Geocode(context.Background(), "San Diego")
	s.True(errors.Is(err, weather.ErrLocationNotFound))
}

func TestGeocoderSuite(t *testing.T) {
	suite.Run(t, new(GeocoderTestSuite))
}
