package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pharmascope/forecaster/internal/config"
	"github.com/pharmascope/forecaster/internal/connectors/aianalysis"
	"github.com/pharmascope/forecaster/internal/connectors/cdc"
	"github.com/pharmascope/forecaster/internal/connectors/fda"
	"github.com/pharmascope/forecaster/internal/connectors/serper"
	"github.com/pharmascope/forecaster/internal/forecast"
	"github.com/pharmascope/forecaster/internal/notify"
	"github.com/pharmascope/forecaster/internal/service"
	"github.com/pharmascope/forecaster/models"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Loading config failed")
	}

	disease := flag.String("disease", cfg.Disease, "disease or condition to forecast")
	drug := flag.String("drug", cfg.Drug, "drug name for regulatory lookups (defaults to disease)")
	region := flag.String("region", cfg.Region, "region for epidemiological data")
	horizon := flag.Int("horizon", cfg.Horizon, "forecast horizon in years")
	flag.Parse()

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl)

	priors := forecast.Priors{
		MarketSize:   models.Prior{Mean: cfg.MarketSizePriorMean, StdDev: cfg.MarketSizePriorStd},
		PatientShare: models.Prior{Mean: cfg.PatientSharePriorMean, StdDev: cfg.PatientSharePriorStd},
		Revenue:      models.Prior{Mean: cfg.RevenuePriorMean, StdDev: cfg.RevenuePriorStd},
	}
	engine, err := forecast.New(forecast.Options{
		Priors:      &priors,
		Seasonality: cfg.Seasonality,
		Trend:       cfg.Trend,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Building forecast engine failed")
	}

	requestTimeout := time.Duration(cfg.RequestTimeout) * time.Second

	cdcClient := cdc.NewClient(cdc.ClientOptions{
		BaseURL:        cfg.CDCBaseURL,
		RequestTimeout: requestTimeout,
		RequestsPerSec: cfg.RequestsPerSec,
	})
	fdaClient := fda.NewClient(fda.ClientOptions{
		BaseURL:        cfg.FDABaseURL,
		APIKey:         cfg.FDAAPIKey,
		RequestTimeout: requestTimeout,
		RequestsPerSec: cfg.RequestsPerSec,
	})
	serperClient := serper.NewClient(serper.ClientOptions{
		BaseURL:        cfg.SerperBaseURL,
		APIKey:         cfg.SerperAPIKey,
		RequestTimeout: requestTimeout,
		RequestsPerSec: cfg.RequestsPerSec,
	})
	aiClient := aianalysis.NewClient(aianalysis.NewAnthropicCaller(cfg.AnthropicAPIKey))

	svc := service.New(engine, serperClient, cdcClient, fdaClient, aiClient)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	report, err := svc.GenerateForecast(ctx, service.Request{
		Disease: *disease,
		Drug:    *drug,
		Region:  *region,
		Horizon: *horizon,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Forecast failed")
	}

	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Encoding report failed")
	}
	fmt.Println(string(output))

	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != 0 {
		notifier, err := notify.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			log.Error().Err(err).Msg("Creating notifier failed")
			return
		}
		if err := notifier.SendReport(report); err != nil {
			log.Error().Err(err).Msg("Sending report failed")
		}
	}
}
