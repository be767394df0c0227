package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestApplyGeneratedClientID(t *testing.T) {
	cfg := defaultMQTTConfig()

	applyGeneratedClientID(&cfg)
	first := cfg.ClientID

	if !strings.HasPrefix(first, "burst-") {
		t.Errorf("generated client ID = %s; want burst- prefix", first)
	}
	if len(first) != len("burst-")+8 {
		t.Errorf("generated client ID = %s; want 8 unique characters after the prefix", first)
	}

	cfg.ClientID = ""
	applyGeneratedClientID(&cfg)
	if cfg.ClientID == first {
		t.Error("two generated client IDs collided")
	}
}

func TestApplyGeneratedClientID_KeepsConfiguredID(t *testing.T) {
	cfg := defaultMQTTConfig()
	cfg.ClientID = "pubA"

	applyGeneratedClientID(&cfg)

	if cfg.ClientID != "pubA" {
		t.Errorf("ClientID = %s; a configured ID must not be replaced", cfg.ClientID)
	}
}

func TestApplyRuntimeValidation_WithoutCertCN(t *testing.T) {
	cfg := &Config{
		MQTT:  MQTTConfig{UseCertCNPrefix: false},
		Burst: BurstConfig{Topic: "original/topic"},
	}

	if err := applyRuntimeValidation(cfg); err != nil {
		t.Fatalf("applyRuntimeValidation() error = %v; want nil", err)
	}

	if cfg.Burst.Topic != "original/topic" {
		t.Errorf("Topic = %s; want original/topic unchanged", cfg.Burst.Topic)
	}
}

func TestApplyRuntimeValidation_MissingCert(t *testing.T) {
	cfg := &Config{
		MQTT: MQTTConfig{
			UseCertCNPrefix: true,
			ClientCert:      "/nonexistent/cert.pem",
		},
		Burst: BurstConfig{Topic: "original/topic"},
	}

	if err := applyRuntimeValidation(cfg); err == nil {
		t.Error("applyRuntimeValidation() error = nil; want error for missing cert")
	}
}

func TestExtractCNFromCertFile_InvalidCert(t *testing.T) {
	tmpDir := t.TempDir()
	certPath := filepath.Join(tmpDir, "invalid-cert.pem")
	if err := os.WriteFile(certPath, []byte("invalid cert content"), 0600); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if _, err := extractCNFromCertFile(certPath); err == nil {
		t.Error("extractCNFromCertFile() error = nil; want error for invalid PEM")
	}
}

func TestExtractCNFromCertFile_MissingFile(t *testing.T) {
	if _, err := extractCNFromCertFile("/nonexistent/cert.pem"); err == nil {
		t.Error("extractCNFromCertFile() error = nil; want error for missing file")
	}
}
