package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	WttrBaseURL      string
	GeocodingBaseURL string
	OpenMeteoBaseURL string
}

func LoadConfig() (*Config, error) {
	return LoadConfigWith(viper.New())
}

// LoadConfigWith reads the configuration into v, which may already carry
// values or defaults set by the caller (for example command-line flags).
func LoadConfigWith(v *viper.Viper) (*Config, error) {
	setDefault(v, "SERVICE_NAME", "weather-report")
	setDefault(v, "SERVER_ADDRESS", "0.0.0.0:3000")
	setDefault(v, "LOG_LEVEL", "info")
	setDefault(v, "HTTP_TIMEOUT", 30)
	setDefault(v, "WTTR_BASE_URL", "https://wttr.in")
	setDefault(v, "GEOCODING_BASE_URL", "https://geocoding-api.open-meteo.com")
	setDefault(v, "OPEN_METEO_BASE_URL", "https://api.open-meteo.com")

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Debug().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:      v.GetString("SERVICE_NAME"),
		ServerAddress:    v.GetString("SERVER_ADDRESS"),
		Env:              v.GetString("ENV"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		HTTPTimeout:      v.GetInt32("HTTP_TIMEOUT"),
		WttrBaseURL:      v.GetString("WTTR_BASE_URL"),
		GeocodingBaseURL: v.GetString("GEOCODING_BASE_URL"),
		OpenMeteoBaseURL: v.GetString("OPEN_METEO_BASE_URL"),
	}

	return config, nil
}

// setDefault leaves defaults the caller already put on v in place.
func setDefault(v *viper.Viper, key string, value any) {
	if v.IsSet(key) {
		return
	}
	v.SetDefault(key, value)
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}
