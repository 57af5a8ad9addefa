package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-report/internal/report"
	"ulascansenturk/weather-report/internal/service"
	"ulascansenturk/weather-report/internal/weather"
)

const defaultForecastDays = weather.MaxForecastDays

type WeatherHandler struct {
	weatherService service.WeatherService
	timeout        time.Duration
}

func NewWeatherHandler(weatherService service.WeatherService, timeout time.Duration) *WeatherHandler {
	return &WeatherHandler{
		weatherService: weatherService,
		timeout:        timeout,
	}
}

func (h *WeatherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var handle http.HandlerFunc
	switch r.URL.Path {
	case "/weather":
		handle = h.GetWeather
	case "/weather/report":
		handle = h.GetReport
	case "/weather/forecast":
		handle = h.GetForecast
	case "/weather/oneline":
		handle = h.GetOneLine
	default:
		respondWithError(w, http.StatusNotFound, "not found")
		return
	}

	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	handle(w, r)
}

// GetWeather returns the canonical weather JSON, or {"error": "..."} with a
// 502 when no provider could answer.
func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	location, ok := requireLocation(w, r)
	if !ok {
		return
	}

	includeForecast := false
	if raw := r.URL.Query().Get("forecast"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "parameter 'forecast' must be a boolean")
			return
		}
		includeForecast = parsed
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result := h.weatherService.GetWeather(ctx, location, includeForecast)
	if result.IsError() {
		log.Error().Str("location", location).Str("error", result.Err()).Msg("failed to get weather data")
		respondWithJSON(w, http.StatusBadGateway, result)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

func (h *WeatherHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	location, ok := requireLocation(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result := h.weatherService.GetWeather(ctx, location, false)
	respondWithText(w, textStatus(result), report.FormatReport(result))
}

func (h *WeatherHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	location, ok := requireLocation(w, r)
	if !ok {
		return
	}

	days := defaultForecastDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "parameter 'days' must be an integer")
			return
		}
		days = parsed
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result := h.weatherService.GetWeather(ctx, location, true)
	respondWithText(w, textStatus(result), report.FormatForecast(result, days))
}

func (h *WeatherHandler) GetOneLine(w http.ResponseWriter, r *http.Request) {
	location, ok := requireLocation(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	line, err := h.weatherService.OneLine(ctx, location)
	if err != nil {
		log.Error().Err(err).Str("location", location).Msg("failed to get one-line weather")
		respondWithError(w, http.StatusBadGateway, err.Error())
		return
	}

	respondWithText(w, http.StatusOK, line+"\n")
}

func requireLocation(w http.ResponseWriter, r *http.Request) (string, bool) {
	location := strings.TrimSpace(r.URL.Query().Get("q"))
	if location == "" {
		respondWithError(w, http.StatusBadRequest, "location parameter 'q' is required")
		return "", false
	}
	return location, true
}

func textStatus(result weather.Report) int {
	if result.IsError() {
		return http.StatusBadGateway
	}
	return http.StatusOK
}
