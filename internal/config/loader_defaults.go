package config

import "time"

// defaultMQTTConfig returns the default MQTT configuration
func defaultMQTTConfig() MQTTConfig {
	return MQTTConfig{
		Host:              "localhost",
		Port:              1883,
		ClientID:          "",
		QoS:               0,
		KeepAlive:         60 * time.Second,
		ConnectTimeout:    5 * time.Second,
		ConnectPoll:       10 * time.Millisecond,
		DisconnectTimeout: 250,
		TLSEnabled:        false,
		CACert:            "",
		ClientCert:        "",
		ClientKey:         "",
		InsecureSkip:      false,
		UseCertCNPrefix:   false,
	}
}

// defaultBurstConfig returns the default burst configuration
func defaultBurstConfig() BurstConfig {
	return BurstConfig{
		Topic:       "testing/this/out",
		Count:       10,
		Start:       1,
		MessageSize: 32,
		Delay:       0,
	}
}

// defaultConfig returns a complete configuration with all default values
func defaultConfig() *Config {
	return &Config{
		MQTT:  defaultMQTTConfig(),
		Burst: defaultBurstConfig(),
	}
}
