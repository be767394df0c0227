package config

import (
	"flag"
)

// Command line flags (have precedence over environment variables)
var (
	// MQTT flags
	flagMQTTHost              = flag.String("mqtt-host", "", "MQTT broker host")
	flagMQTTPort              = flag.Int("mqtt-port", 0, "MQTT broker port")
	flagMQTTClientID          = flag.String("mqtt-client-id", "", "MQTT client ID")
	flagMQTTQoS               = flag.Int("mqtt-qos", -1, "MQTT QoS (0, 1, or 2)")
	flagMQTTKeepAlive         = flag.Duration("mqtt-keep-alive", 0, "MQTT keep-alive interval")
	flagMQTTConnectTimeout    = flag.Duration("mqtt-connect-timeout", 0, "MQTT connect timeout")
	flagMQTTConnectPoll       = flag.Duration("mqtt-connect-poll", 0, "MQTT connect poll interval")
	flagMQTTDisconnectTimeout = flag.Int("mqtt-disconnect-timeout", 0, "MQTT disconnect timeout (ms)")
	flagMQTTTLSEnabled        = flag.Bool("mqtt-tls-enabled", false, "Enable MQTT TLS")
	flagMQTTCACert            = flag.String("mqtt-ca-cert", "", "MQTT CA certificate path")
	flagMQTTClientCert        = flag.String("mqtt-client-cert", "", "MQTT client certificate path")
	flagMQTTClientKey         = flag.String("mqtt-client-key", "", "MQTT client key path")
	flagMQTTTLSInsecureSkip   = flag.Bool("mqtt-tls-insecure-skip", false, "Skip MQTT TLS verification")
	// Prefix the topic with client cert CN (for ACL constraints)
	flagMQTTUseCertCNPrefix = flag.Bool("mqtt-use-cert-cn-prefix", false, "Prefix topic with client cert CN")

	// Burst flags
	flagBurstTopic       = flag.String("topic", "", "Topic to publish to")
	flagBurstCount       = flag.Int("count", 0, "Number of messages to send")
	flagBurstStart       = flag.Int64("start", 0, "Starting counter value")
	flagBurstMessageSize = flag.Int("message-size", 0, "Exact payload size in bytes for each message")
	flagBurstDelay       = flag.Duration("delay", 0, "Delay between publishes")
)

// applyMQTTFlags applies command line flags to MQTT configuration
func applyMQTTFlags(cfg *MQTTConfig) {
	applyMQTTFlagStrings(cfg)
	applyMQTTFlagInts(cfg)
	applyMQTTFlagTimeouts(cfg)
	applyMQTTFlagTLS(cfg)
	applyMQTTFlagBools(cfg)
}

func applyMQTTFlagStrings(cfg *MQTTConfig) {
	if *flagMQTTHost != "" {
		cfg.Host = *flagMQTTHost
	}
	if *flagMQTTClientID != "" {
		cfg.ClientID = *flagMQTTClientID
	}
}

func applyMQTTFlagInts(cfg *MQTTConfig) {
	if *flagMQTTPort != 0 {
		cfg.Port = *flagMQTTPort
	}
	if *flagMQTTQoS != -1 && *flagMQTTQoS >= 0 && *flagMQTTQoS <= 2 {
		cfg.QoS = byte(*flagMQTTQoS) // #nosec G115 - validated range 0-2
	}
	if *flagMQTTDisconnectTimeout != 0 {
		cfg.DisconnectTimeout = uint(*flagMQTTDisconnectTimeout) // #nosec G115 - config values are non-negative
	}
}

func applyMQTTFlagTimeouts(cfg *MQTTConfig) {
	if *flagMQTTKeepAlive != 0 {
		cfg.KeepAlive = *flagMQTTKeepAlive
	}
	if *flagMQTTConnectTimeout != 0 {
		cfg.ConnectTimeout = *flagMQTTConnectTimeout
	}
	if *flagMQTTConnectPoll != 0 {
		cfg.ConnectPoll = *flagMQTTConnectPoll
	}
}

func applyMQTTFlagTLS(cfg *MQTTConfig) {
	if *flagMQTTCACert != "" {
		cfg.CACert = *flagMQTTCACert
	}
	if *flagMQTTClientCert != "" {
		cfg.ClientCert = *flagMQTTClientCert
	}
	if *flagMQTTClientKey != "" {
		cfg.ClientKey = *flagMQTTClientKey
	}
}

func applyMQTTFlagBools(cfg *MQTTConfig) {
	// Handle bool flags - check if explicitly set
	if isFlagSet("mqtt-tls-enabled") {
		cfg.TLSEnabled = *flagMQTTTLSEnabled
	}
	if isFlagSet("mqtt-tls-insecure-skip") {
		cfg.InsecureSkip = *flagMQTTTLSInsecureSkip
	}
	if isFlagSet("mqtt-use-cert-cn-prefix") {
		cfg.UseCertCNPrefix = *flagMQTTUseCertCNPrefix
	}
}

// applyBurstFlags applies command line flags to burst configuration
func applyBurstFlags(cfg *BurstConfig) {
	if *flagBurstTopic != "" {
		cfg.Topic = *flagBurstTopic
	}
	if *flagBurstCount != 0 {
		cfg.Count = *flagBurstCount
	}
	if isFlagSet("start") {
		cfg.Start = *flagBurstStart
	}
	if *flagBurstMessageSize != 0 {
		cfg.MessageSize = *flagBurstMessageSize
	}
	if isFlagSet("delay") {
		cfg.Delay = *flagBurstDelay
	}
}

// isFlagSet checks if a flag was explicitly set on the command line
func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
