package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"ulascansenturk/weather-report/config"
	"ulascansenturk/weather-report/internal/providers"
	"ulascansenturk/weather-report/internal/service"
	"ulascansenturk/weather-report/internal/weather"
)

const defaultLogLevel = "warn"

const usage = `Usage: weather [flags] <location>

Examples:
  weather "San Diego"
  weather "La Jolla, CA"
  weather 92093
  weather --forecast --days 2 London
  weather --oneline Tokyo

Flags:
`

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("weather", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprint(stderr, usage)
		flags.PrintDefaults()
	}
	forecast := flags.BoolP("forecast", "f", false, "show the forecast instead of current conditions")
	days := flags.IntP("days", "d", weather.MaxForecastDays, "number of forecast days (1-3)")
	oneLine := flags.Bool("oneline", false, "print a single line summary")
	asJSON := flags.Bool("json", false, "print the canonical JSON payload")
	logLevelFlag := flags.String("log-level", defaultLogLevel, "log level")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	location := strings.TrimSpace(strings.Join(flags.Args(), " "))
	if location == "" {
		flags.Usage()
		return 1
	}

	setLogger(stderr, *logLevelFlag)

	v := viper.New()
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	if err := v.BindPFlag("LOG_LEVEL", flags.Lookup("log-level")); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	conf, err := config.LoadConfigWith(v)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	setLogger(stderr, conf.LogLevel)

	wttr := providers.NewWttrProvider(conf.WttrBaseURL)
	openMeteo := providers.NewOpenMeteoProvider(conf.OpenMeteoBaseURL, providers.NewOpenMeteoGeocoder(conf.GeocodingBaseURL))
	svc := service.NewWeatherService(service.NewWeatherRequestAggregator(wttr, openMeteo), wttr)

	switch {
	case *oneLine:
		line, err := svc.OneLine(ctx, location)
		if err != nil {
			fmt.Fprintf(stdout, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, line)
	case *asJSON:
		result := svc.GetWeather(ctx, location, *forecast)
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, string(out))
		if result.IsError() {
			return 1
		}
	case *forecast:
		text, err := svc.Forecast(ctx, location, *days)
		fmt.Fprintln(stdout, text)
		if err != nil {
			return 1
		}
	default:
		text, err := svc.Report(ctx, location)
		fmt.Fprintln(stdout, text)
		if err != nil {
			return 1
		}
	}
	return 0
}

func setLogger(out io.Writer, level string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.WarnLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: true}).Level(logLevel).With().Timestamp().Logger()
}
