package providers

import (
	"fmt"
	"math"

	"ulascansenturk/weather-report/internal/weather"
)

// Defaults for values open-meteo can leave out. UV index and visibility are
// never requested from open-meteo, so they always take these values.
const (
	defaultTempF           = 70.0
	defaultHumidityPct     = 50.0
	defaultWindMph         = 0.0
	defaultUVIndex         = 0
	defaultVisibilityMiles = 10
)

type OpenMeteoCurrent struct {
	Temperature         *float64 `json:"temperature_2m"`
	RelativeHumidity    *float64 `json:"relative_humidity_2m"`
	ApparentTemperature *float64 `json:"apparent_temperature"`
	WeatherCode         *int     `json:"weather_code"`
	WindSpeed           *float64 `json:"wind_speed_10m"`
	WindDirection       *float64 `json:"wind_direction_10m"`
}

type OpenMeteoDaily struct {
	Time        []string   `json:"time"`
	WeatherCode []*int     `json:"weather_code"`
	TempMax     []*float64 `json:"temperature_2m_max"`
	TempMin     []*float64 `json:"temperature_2m_min"`
}

// OpenMeteoResponse is the raw forecast payload, in fahrenheit and mph.
type OpenMeteoResponse struct {
	Current *OpenMeteoCurrent `json:"current"`
	Daily   OpenMeteoDaily    `json:"daily"`
}

// Normalize maps an open-meteo payload into the canonical weather shape.
func Normalize(coords Coordinates, raw OpenMeteoResponse) (weather.Weather, error) {
	if raw.Current == nil {
		return weather.Weather{}, fmt.Errorf("missing current block")
	}

	forecast, err := normalizeDaily(raw.Daily)
	if err != nil {
		return weather.Weather{}, err
	}

	c := raw.Current
	tempF := roundInt(valueOr(c.Temperature, defaultTempF))
	feelsLikeF := tempF
	if c.ApparentTemperature != nil {
		feelsLikeF = roundInt(*c.ApparentTemperature)
	}

	condition := unknownCondition
	if c.WeatherCode != nil {
		condition = DescribeWeatherCode(*c.WeatherCode)
	}

	current := weather.Current{
		Condition:       condition,
		TempF:           tempF,
		TempC:           FahrenheitToCelsius(tempF),
		FeelsLikeF:      feelsLikeF,
		FeelsLikeC:      FahrenheitToCelsius(feelsLikeF),
		HumidityPct:     roundInt(valueOr(c.RelativeHumidity, defaultHumidityPct)),
		WindMph:         roundInt(valueOr(c.WindSpeed, defaultWindMph)),
		WindDirection:   weather.CompassPoint(valueOr(c.WindDirection, 0)),
		UVIndex:         defaultUVIndex,
		VisibilityMiles: defaultVisibilityMiles,
	}

	location := weather.Location{
		City:    coords.Name,
		Region:  coords.Region,
		Country: coords.Country,
	}

	return weather.NewWeather(location, current, forecast, weather.ProviderFallback), nil
}

func normalizeDaily(d OpenMeteoDaily) ([]weather.ForecastDay, error) {
	n := len(d.Time)
	if len(d.WeatherCode) != n || len(d.TempMax) != n || len(d.TempMin) != n {
		return nil, fmt.Errorf("daily arrays differ in length: time=%d weather_code=%d max=%d min=%d",
			n, len(d.WeatherCode), len(d.TempMax), len(d.TempMin))
	}
	if n > weather.MaxForecastDays {
		n = weather.MaxForecastDays
	}

	days := make([]weather.ForecastDay, 0, n)
	for i := 0; i < n; i++ {
		code, high, low := d.WeatherCode[i], d.TempMax[i], d.TempMin[i]
		if code == nil || high == nil || low == nil {
			return nil, fmt.Errorf("daily values missing for %s", d.Time[i])
		}
		days = append(days, weather.ForecastDay{
			Date:      d.Time[i],
			HighF:     roundInt(*high),
			LowF:      roundInt(*low),
			Condition: DescribeWeatherCode(*code),
		})
	}
	return days, nil
}

// FahrenheitToCelsius converts whole degrees, rounding half away from zero.
func FahrenheitToCelsius(f int) int {
	return roundInt(float64(f-32) * 5 / 9)
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
