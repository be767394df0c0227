package mqtt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ibs-source/mqtt-burst/publisher/golang/internal/config"
	"github.com/ibs-source/mqtt-burst/publisher/golang/internal/log"
)

// Errors reported by the connector. Both leave the session unusable.
var (
	// ErrConnectTimeout means no connect notification arrived within the ceiling
	ErrConnectTimeout = errors.New("timed out waiting for MQTT connection")
	// ErrConnectRejected means the broker refused the connection
	ErrConnectRejected = errors.New("MQTT connection rejected")
)

// Connector turns the asynchronous connect notification into a synchronous
// precondition for the publish loop, with a hard upper bound on the wait.
type Connector struct {
	waitCeiling  time.Duration
	pollInterval time.Duration
	log          *log.Logger
}

// NewConnector creates a connector with the configured wait bound and poll interval
func NewConnector(cfg *config.MQTTConfig, logger *log.Logger) *Connector {
	return &Connector{
		waitCeiling:  cfg.ConnectTimeout,
		pollInterval: cfg.ConnectPoll,
		log:          logger,
	}
}

// Connect initiates the connection attempt and waits for the connect
// notification, checking every pollInterval for up to waitCeiling measured
// from the start of the wait. On every failure path the session's background
// I/O is stopped before returning.
func (c *Connector) Connect(ctx context.Context, s *Session) error {
	token := s.client.Connect()

	deadline := time.Now().Add(c.waitCeiling)
	for time.Now().Before(deadline) {
		if s.result.connected() {
			c.log.Info("Connected to MQTT broker")
			return nil
		}

		select {
		case <-ctx.Done():
			_ = s.Close()
			return ctx.Err()
		case <-token.Done():
			if err := token.Error(); err != nil {
				_ = s.Close()
				return fmt.Errorf("%w: %v", ErrConnectRejected, err)
			}
			// Token completed cleanly; the notification lands on a later poll.
		default:
		}

		time.Sleep(c.pollInterval)
	}

	_ = s.Close()
	return ErrConnectTimeout
}
