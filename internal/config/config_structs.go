// Package config provides configuration loading and validation from environment variables and command line flags.
package config

import "time"

// Config holds the complete configuration for one burst run
type Config struct {
	MQTT  MQTTConfig
	Burst BurstConfig
}

// MQTTConfig holds MQTT client configuration
type MQTTConfig struct {
	Host              string
	Port              int
	ClientID          string // Empty means a unique ID is generated at load time
	QoS               byte
	KeepAlive         time.Duration
	ConnectTimeout    time.Duration // Ceiling on the wait for the connect notification
	ConnectPoll       time.Duration // Interval between checks while waiting
	DisconnectTimeout uint          // Milliseconds for graceful disconnect
	// TLS Configuration
	TLSEnabled      bool
	CACert          string
	ClientCert      string
	ClientKey       string
	InsecureSkip    bool
	UseCertCNPrefix bool // If true, prefix the topic with cert CN for ACL constraints
}

// BurstConfig holds the parameters of the publish burst
type BurstConfig struct {
	Topic       string
	Count       int           // Number of messages to publish, must be positive
	Start       int64         // Starting counter value
	MessageSize int           // Exact payload size in bytes, must be positive
	Delay       time.Duration // Pause between publishes, zero disables pacing
}
