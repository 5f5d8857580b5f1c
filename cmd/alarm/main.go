package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/quentinrf/proximity-alarm/internal/ports"
)

func main() {
	// Initialize logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	config, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("log_level", config.LogLevel).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	log.Info().Str("driver", config.Driver).Msg("starting proximity alarm")

	hw, err := buildHardware(config)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize hardware")
	}

	alarm := ports.NewAlarm(
		hw.motion,
		hw.distance,
		hw.buzzer,
		hw.indicator,
		config.alarmThreshold(),
		config.TickInterval,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		alarm.Run(ctx)
		close(done)
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down alarm...")

	cancel()
	<-done

	if err := alarm.Off(); err != nil {
		log.Error().Err(err).Msg("failed to switch outputs off")
	}

	log.Info().Msg("alarm stopped")
}
