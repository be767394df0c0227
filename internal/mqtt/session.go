// Package mqtt provides the broker session and the bounded-wait connector.
package mqtt

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"sync"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/ibs-source/mqtt-burst/publisher/golang/internal/config"
	"github.com/ibs-source/mqtt-burst/publisher/golang/internal/log"
)

// client is the subset of the paho client the session relies on
type client interface {
	Connect() mqtt.Token
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Disconnect(quiesce uint)
}

// Session owns the single connection to the broker for the duration of one
// burst run. It is created unconnected, connected once by the Connector and
// closed exactly once by the caller.
type Session struct {
	client            client
	result            *connectResult
	disconnectTimeout uint
	closeOnce         sync.Once
	log               *log.Logger
}

// connectResult is the one-shot flag that bridges the asynchronous connect
// notification into the synchronous wait in the connector.
type connectResult struct {
	mu    sync.Mutex
	fired bool
}

func (r *connectResult) notify() {
	r.mu.Lock()
	r.fired = true
	r.mu.Unlock()
}

func (r *connectResult) connected() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fired
}

// NewSession creates an unconnected session against the configured broker
func NewSession(cfg *config.MQTTConfig, logger *log.Logger) (*Session, error) {
	result := &connectResult{}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL(cfg))
	opts.SetClientID(cfg.ClientID)
	opts.SetKeepAlive(cfg.KeepAlive)
	opts.SetCleanSession(true)
	// A burst run is one-shot: a lost connection fails the run rather than reconnecting
	opts.SetAutoReconnect(false)

	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		if err != nil {
			logger.Error("MQTT connection lost: %v", err)
		}
	})

	opts.SetOnConnectHandler(func(_ mqtt.Client) {
		result.notify()
		logger.Debug("MQTT connect notification received")
	})

	// Configure TLS if enabled
	if cfg.TLSEnabled {
		tlsConfig, err := newTLSConfig(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create TLS config: %w", err)
		}
		opts.SetTLSConfig(tlsConfig)
	}

	return &Session{
		client:            mqtt.NewClient(opts),
		result:            result,
		disconnectTimeout: cfg.DisconnectTimeout,
		log:               logger,
	}, nil
}

// brokerURL builds the broker URL from host and port
func brokerURL(cfg *config.MQTTConfig) string {
	scheme := "tcp"
	if cfg.TLSEnabled {
		scheme = "ssl"
	}
	return fmt.Sprintf("%s://%s:%d", scheme, cfg.Host, cfg.Port)
}

// newTLSConfig creates a TLS configuration from MQTT config
func newTLSConfig(cfg *config.MQTTConfig) (*tls.Config, error) {
	tlsConfig := &tls.Config{
		// Note: Enabling InsecureSkipVerify weakens TLS security and should only be used for testing.
		InsecureSkipVerify: cfg.InsecureSkip, // #nosec G402 - configurable for testing environments
		MinVersion:         tls.VersionTLS12,
	}

	// Load CA certificate if provided
	if cfg.CACert != "" {
		caCert, err := os.ReadFile(cfg.CACert)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA cert: %w", err)
		}

		caCertPool := x509.NewCertPool()
		if !caCertPool.AppendCertsFromPEM(caCert) {
			return nil, fmt.Errorf("failed to parse CA cert")
		}
		tlsConfig.RootCAs = caCertPool
	}

	// Load client certificate and key if provided
	if cfg.ClientCert != "" && cfg.ClientKey != "" {
		cert, err := tls.LoadX509KeyPair(cfg.ClientCert, cfg.ClientKey)
		if err != nil {
			return nil, fmt.Errorf("failed to load client cert/key: %w", err)
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	return tlsConfig, nil
}

// Publish submits one payload to a topic and returns the delivery token
func (s *Session) Publish(topic string, qos byte, retained bool, payload []byte) mqtt.Token {
	return s.client.Publish(topic, qos, retained, payload)
}

// Close stops background I/O and disconnects from the broker. It is safe to
// call on every exit path; only the first call does the work.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.client.Disconnect(s.disconnectTimeout)
		s.log.Debug("MQTT session closed")
	})
	return nil
}
