// Package main starts the burst publisher binary.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/ibs-source/mqtt-burst/publisher/golang/internal/burst"
	"github.com/ibs-source/mqtt-burst/publisher/golang/internal/config"
	"github.com/ibs-source/mqtt-burst/publisher/golang/internal/log"
	"github.com/ibs-source/mqtt-burst/publisher/golang/internal/mqtt"
)

func run() int {
	logger := log.New()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration: %v", err)
		return 1
	}

	logger.Info("MQTT: %s:%d, client: %s", cfg.MQTT.Host, cfg.MQTT.Port, cfg.MQTT.ClientID)
	logger.Info("Burst: %d messages of %d bytes to %s (start %d, delay %v)",
		cfg.Burst.Count, cfg.Burst.MessageSize, cfg.Burst.Topic, cfg.Burst.Start, cfg.Burst.Delay)

	// Reject undersized payloads before any network activity
	if err := burst.CheckCapacity(cfg.Burst.Start, cfg.Burst.Count, cfg.Burst.MessageSize); err != nil {
		logger.Error("%v", err)
		return 1
	}

	session, err := mqtt.NewSession(&cfg.MQTT, logger)
	if err != nil {
		logger.Error("Failed to create MQTT session: %v", err)
		return 1
	}
	// The session is closed exactly once on every exit path below
	defer func() { _ = session.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connector := mqtt.NewConnector(&cfg.MQTT, logger)
	if err := connector.Connect(ctx, session); err != nil {
		return report(err, logger)
	}

	publisher := burst.NewPublisher(session, cfg, logger)
	if err := publisher.Run(ctx); err != nil {
		return report(err, logger)
	}

	return 0
}

// report maps a run error to its exit code, keeping interrupts distinct
// from broker failures.
func report(err error, logger *log.Logger) int {
	if errors.Is(err, context.Canceled) {
		logger.Error("Interrupted")
		return 130
	}
	logger.Error("%v", err)
	return 1
}

func main() {
	// Keep main minimal to ensure defers in run() execute correctly.
	os.Exit(run())
}
