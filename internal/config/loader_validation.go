package config

import "fmt"

// Validate checks configuration constraints
func Validate(cfg *Config) error {
	if err := validateMQTT(&cfg.MQTT); err != nil {
		return err
	}
	return validateBurst(&cfg.Burst)
}

// validateMQTT validates MQTT configuration
func validateMQTT(cfg *MQTTConfig) error {
	if cfg.Host == "" {
		return fmt.Errorf("mqtt host cannot be empty")
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("mqtt port must be between 1 and 65535")
	}
	if cfg.ClientID == "" {
		return fmt.Errorf("mqtt client ID cannot be empty")
	}
	if cfg.ConnectTimeout <= 0 {
		return fmt.Errorf("mqtt connect timeout must be positive")
	}
	if cfg.ConnectPoll <= 0 {
		return fmt.Errorf("mqtt connect poll interval must be positive")
	}
	return nil
}

// validateBurst validates burst configuration
func validateBurst(cfg *BurstConfig) error {
	if cfg.Topic == "" {
		return fmt.Errorf("topic cannot be empty")
	}
	if cfg.Count <= 0 {
		return fmt.Errorf("count must be greater than zero")
	}
	if cfg.MessageSize <= 0 {
		return fmt.Errorf("message size must be greater than zero")
	}
	if cfg.Delay < 0 {
		return fmt.Errorf("delay must be non-negative")
	}
	return nil
}
