package weather

// MaxForecastDays is the longest forecast any provider result may carry.
const MaxForecastDays = 3

type Provider string

const (
	ProviderPrimary  Provider = "primary"
	ProviderFallback Provider = "fallback"
)

type Location struct {
	City    string `json:"city"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

type Current struct {
	Condition       string `json:"condition"`
	TempF           int    `json:"temp_f"`
	TempC           int    `json:"temp_c"`
	FeelsLikeF      int    `json:"feels_like_f"`
	FeelsLikeC      int    `json:"feels_like_c"`
	HumidityPct     int    `json:"humidity_pct"`
	WindMph         int    `json:"wind_mph"`
	WindDirection   string `json:"wind_direction"`
	UVIndex         int    `json:"uv_index"`
	VisibilityMiles int    `json:"visibility_miles"`
}

type ForecastDay struct {
	Date      string `json:"date"`
	HighF     int    `json:"high_f"`
	LowF      int    `json:"low_f"`
	Condition string `json:"condition"`
}

// Weather is the canonical shape every provider is normalized into. It is
// only built through NewWeather and is never modified afterwards.
type Weather struct {
	location Location
	current  Current
	forecast []ForecastDay
	provider Provider
}

func NewWeather(location Location, current Current, forecast []ForecastDay, provider Provider) Weather {
	if len(forecast) > MaxForecastDays {
		forecast = forecast[:MaxForecastDays]
	}

	return Weather{
		location: location,
		current:  current,
		forecast: append([]ForecastDay(nil), forecast...),
		provider: provider,
	}
}

func (w Weather) Location() Location { return w.location }

func (w Weather) Current() Current { return w.current }

func (w Weather) Provider() Provider { return w.provider }

// Forecast returns a copy of the forecast days.
func (w Weather) Forecast() []ForecastDay {
	return append([]ForecastDay(nil), w.forecast...)
}

func (w Weather) WithoutForecast() Weather {
	w.forecast = nil
	return w
}

type weatherJSON struct {
	Location Location      `json:"location"`
	Current  Current       `json:"current"`
	Forecast []ForecastDay `json:"forecast,omitempty"`
	Provider Provider      `json:"provider"`
}

func (w Weather) toJSON() weatherJSON {
	return weatherJSON{
		Location: w.location,
		Current:  w.current,
		Forecast: w.forecast,
		Provider: w.provider,
	}
}
