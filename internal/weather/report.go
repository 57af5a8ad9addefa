package weather

import (
	"encoding/json"
	"errors"
)

// Report holds either a Weather or an error message. The zero value is an
// error report with an empty message.
type Report struct {
	weather *Weather
	errMsg  string
}

func Success(w Weather) Report {
	return Report{weather: &w}
}

func Failure(msg string) Report {
	return Report{errMsg: msg}
}

func FailureFromError(err error) Report {
	if err == nil {
		return Failure("unknown error")
	}
	return Failure(err.Error())
}

func (r Report) Weather() (Weather, bool) {
	if r.weather == nil {
		return Weather{}, false
	}
	return *r.weather, true
}

func (r Report) IsError() bool {
	return r.weather == nil
}

// Err returns the error message, or "" for a successful report.
func (r Report) Err() string {
	if r.weather != nil {
		return ""
	}
	return r.errMsg
}

func (r Report) WithoutForecast() Report {
	if r.weather == nil {
		return r
	}
	return Success(r.weather.WithoutForecast())
}

type errorJSON struct {
	Error string `json:"error"`
}

func (r Report) MarshalJSON() ([]byte, error) {
	if r.weather == nil {
		return json.Marshal(errorJSON{Error: r.errMsg})
	}
	return json.Marshal(r.weather.toJSON())
}

func (r *Report) UnmarshalJSON(data []byte) error {
	var probe struct {
		Error *string `json:"error"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if probe.Error != nil {
		*r = Failure(*probe.Error)
		return nil
	}

	var payload weatherJSON
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}
	if payload.Provider == "" {
		return errors.New("weather report is missing provider")
	}

	*r = Success(NewWeather(payload.Location, payload.Current, payload.Forecast, payload.Provider))
	return nil
}
