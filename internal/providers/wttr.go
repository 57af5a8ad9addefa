package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"ulascansenturk/weather-report/internal/weather"
)

const (
	wttrName = "wttr.in"

	// hourly[4] is the 12:00 slot of wttr.in's 3-hourly breakdown.
	middayHourlyIndex = 4

	oneLineFormat = "%l: %c %t (%f) %h humidity, %w wind"
)

type wttrValue struct {
	Value string `json:"value"`
}

type wttrCurrentCondition struct {
	TempF           string      `json:"temp_F"`
	TempC           string      `json:"temp_C"`
	FeelsLikeF      string      `json:"FeelsLikeF"`
	FeelsLikeC      string      `json:"FeelsLikeC"`
	Humidity        string      `json:"humidity"`
	WeatherDesc     []wttrValue `json:"weatherDesc"`
	WindspeedMiles  string      `json:"windspeedMiles"`
	Winddir16Point  string      `json:"winddir16Point"`
	UVIndex         string      `json:"uvIndex"`
	VisibilityMiles string      `json:"visibilityMiles"`
	Visibility      string      `json:"visibility"`
}

type wttrNearestArea struct {
	AreaName []wttrValue `json:"areaName"`
	Region   []wttrValue `json:"region"`
	Country  []wttrValue `json:"country"`
}

type wttrDay struct {
	Date     string `json:"date"`
	MaxTempF string `json:"maxtempF"`
	MinTempF string `json:"mintempF"`
	Hourly   []struct {
		WeatherDesc []wttrValue `json:"weatherDesc"`
	} `json:"hourly"`
}

type wttrResponse struct {
	CurrentCondition []wttrCurrentCondition `json:"current_condition"`
	NearestArea      []wttrNearestArea      `json:"nearest_area"`
	Weather          []wttrDay              `json:"weather"`
}

type WttrProvider struct {
	client *resty.Client
}

// NewWttrProvider returns the primary provider, which takes free-text
// locations directly.
func NewWttrProvider(baseURL string) *WttrProvider {
	return &WttrProvider{client: newHTTPClient(wttrName, baseURL)}
}

func (p *WttrProvider) Name() string {
	return wttrName
}

func (p *WttrProvider) FetchCurrentAndForecast(ctx context.Context, location string) (weather.Weather, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetPathParam("location", location).
		SetQueryParam("format", "j1").
		Get("/{location}")
	if err != nil {
		return weather.Weather{}, fmt.Errorf("%w from %s: %v", weather.ErrNetwork, wttrName, err)
	}
	if resp.IsError() {
		return weather.Weather{}, fmt.Errorf("%w from %s: status code %d", weather.ErrNetwork, wttrName, resp.StatusCode())
	}

	var payload wttrResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return weather.Weather{}, fmt.Errorf("%w from %s: %v", weather.ErrMalformedResponse, wttrName, err)
	}

	w, err := payload.toWeather()
	if err != nil {
		return weather.Weather{}, fmt.Errorf("%w from %s: %v", weather.ErrMalformedResponse, wttrName, err)
	}
	return w, nil
}

func (p *WttrProvider) FetchOneLine(ctx context.Context, location string) (string, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetPathParam("location", location).
		SetQueryParam("format", oneLineFormat).
		Get("/{location}")
	if err != nil {
		return "", fmt.Errorf("%w from %s: %v", weather.ErrNetwork, wttrName, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w from %s: status code %d", weather.ErrNetwork, wttrName, resp.StatusCode())
	}

	return strings.TrimSpace(resp.String()), nil
}

func (r wttrResponse) toWeather() (weather.Weather, error) {
	if len(r.CurrentCondition) == 0 {
		return weather.Weather{}, fmt.Errorf("missing current_condition")
	}
	if len(r.NearestArea) == 0 {
		return weather.Weather{}, fmt.Errorf("missing nearest_area")
	}

	area := r.NearestArea[0]
	location := weather.Location{}
	var err error
	if location.City, err = firstValue("areaName", area.AreaName); err != nil {
		return weather.Weather{}, err
	}
	if location.Region, err = firstValue("region", area.Region); err != nil {
		return weather.Weather{}, err
	}
	if location.Country, err = firstValue("country", area.Country); err != nil {
		return weather.Weather{}, err
	}

	current, err := r.CurrentCondition[0].toCurrent()
	if err != nil {
		return weather.Weather{}, err
	}

	days := r.Weather
	if len(days) > weather.MaxForecastDays {
		days = days[:weather.MaxForecastDays]
	}
	forecast := make([]weather.ForecastDay, 0, len(days))
	for i, d := range days {
		day, err := d.toForecastDay()
		if err != nil {
			return weather.Weather{}, fmt.Errorf("weather[%d]: %w", i, err)
		}
		forecast = append(forecast, day)
	}

	return weather.NewWeather(location, current, forecast, weather.ProviderPrimary), nil
}

func (c wttrCurrentCondition) toCurrent() (weather.Current, error) {
	condition, err := firstValue("weatherDesc", c.WeatherDesc)
	if err != nil {
		return weather.Current{}, err
	}
	if !weather.IsCompassPoint(c.Winddir16Point) {
		return weather.Current{}, fmt.Errorf("invalid winddir16Point %q", c.Winddir16Point)
	}

	visibility := c.VisibilityMiles
	if visibility == "" {
		visibility = c.Visibility
	}

	current := weather.Current{
		Condition:     condition,
		WindDirection: c.Winddir16Point,
	}
	fields := []struct {
		name  string
		value string
		dest  *int
	}{
		{"temp_F", c.TempF, &current.TempF},
		{"temp_C", c.TempC, &current.TempC},
		{"FeelsLikeF", c.FeelsLikeF, &current.FeelsLikeF},
		{"FeelsLikeC", c.FeelsLikeC, &current.FeelsLikeC},
		{"humidity", c.Humidity, &current.HumidityPct},
		{"windspeedMiles", c.WindspeedMiles, &current.WindMph},
		{"uvIndex", c.UVIndex, &current.UVIndex},
		{"visibility", visibility, &current.VisibilityMiles},
	}
	for _, f := range fields {
		n, err := parseInt(f.name, f.value)
		if err != nil {
			return weather.Current{}, err
		}
		*f.dest = n
	}

	return current, nil
}

func (d wttrDay) toForecastDay() (weather.ForecastDay, error) {
	if d.Date == "" {
		return weather.ForecastDay{}, fmt.Errorf("missing date")
	}
	high, err := parseInt("maxtempF", d.MaxTempF)
	if err != nil {
		return weather.ForecastDay{}, err
	}
	low, err := parseInt("mintempF", d.MinTempF)
	if err != nil {
		return weather.ForecastDay{}, err
	}
	if len(d.Hourly) <= middayHourlyIndex {
		return weather.ForecastDay{}, fmt.Errorf("missing hourly[%d]", middayHourlyIndex)
	}
	condition, err := firstValue("hourly weatherDesc", d.Hourly[middayHourlyIndex].WeatherDesc)
	if err != nil {
		return weather.ForecastDay{}, err
	}

	return weather.ForecastDay{
		Date:      d.Date,
		HighF:     high,
		LowF:      low,
		Condition: condition,
	}, nil
}

func firstValue(field string, values []wttrValue) (string, error) {
	if len(values) == 0 {
		return "", fmt.Errorf("missing %s", field)
	}
	return values[0].Value, nil
}

func parseInt(field, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", field, value)
	}
	return n, nil
}
