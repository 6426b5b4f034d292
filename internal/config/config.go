// Package config loads the worker settings from appsettings.json with
// environment-variable overrides for deploy-time secrets.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPollIntervalSeconds = 10
	defaultListenAddr          = ":8080"
	defaultScriptsPath         = "scripts.json"
)

type Database struct {
	ConnectionString string `json:"connectionString"`
}

type Gateway struct {
	Domain    string `json:"domain"`
	APIKey    string `json:"apiKey"`
	APISecret string `json:"apiSecret"`
}

type Ledger struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type Config struct {
	Database Database `json:"database"`
	Gateway  Gateway  `json:"gateway"`
	Ledger   Ledger   `json:"ledger"`

	Town           string `json:"town"`
	InstrumentCode string `json:"instrumentCode"`
	AssetAccountID int64  `json:"assetAccountID"`

	PollIntervalSeconds int    `json:"pollIntervalSeconds"`
	ListenAddr          string `json:"listenAddr"`
	ScriptsPath         string `json:"scriptsPath"`
}

// Load reads the settings file, applies env overrides (BILLBRIDGE_*) and
// validates the result.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Config{
		PollIntervalSeconds: defaultPollIntervalSeconds,
		ListenAddr:          defaultListenAddr,
		ScriptsPath:         defaultScriptsPath,
	}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Database.ConnectionString = getenvDefault("BILLBRIDGE_DB_CONNECTION", cfg.Database.ConnectionString)
	cfg.Gateway.Domain = getenvDefault("BILLBRIDGE_GATEWAY_DOMAIN", cfg.Gateway.Domain)
	cfg.Gateway.APIKey = getenvDefault("BILLBRIDGE_GATEWAY_API_KEY", cfg.Gateway.APIKey)
	cfg.Gateway.APISecret = getenvDefault("BILLBRIDGE_GATEWAY_API_SECRET", cfg.Gateway.APISecret)
	cfg.Ledger.Host = getenvDefault("BILLBRIDGE_LEDGER_HOST", cfg.Ledger.Host)
	cfg.Ledger.Username = getenvDefault("BILLBRIDGE_LEDGER_USERNAME", cfg.Ledger.Username)
	cfg.Ledger.Password = getenvDefault("BILLBRIDGE_LEDGER_PASSWORD", cfg.Ledger.Password)
	cfg.ListenAddr = getenvDefault("BILLBRIDGE_LISTEN_ADDR", cfg.ListenAddr)
	if v := os.Getenv("BILLBRIDGE_LEDGER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse BILLBRIDGE_LEDGER_PORT: %w", err)
		}
		cfg.Ledger.Port = port
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.Database.ConnectionString == "":
		return errors.New("config: database.connectionString is required")
	case c.Gateway.Domain == "":
		return errors.New("config: gateway.domain is required")
	case c.Gateway.APIKey == "" || c.Gateway.APISecret == "":
		return errors.New("config: gateway.apiKey and gateway.apiSecret are required")
	case c.Ledger.Host == "" || c.Ledger.Port == 0:
		return errors.New("config: ledger.host and ledger.port are required")
	case c.Ledger.Username == "" || c.Ledger.Password == "":
		return errors.New("config: ledger.username and ledger.password are required")
	case strings.TrimSpace(c.Town) == "":
		return errors.New("config: town is required")
	case c.InstrumentCode == "":
		return errors.New("config: instrumentCode is required")
	case c.AssetAccountID == 0:
		return errors.New("config: assetAccountID is required")
	case c.PollIntervalSeconds <= 0:
		return errors.New("config: pollIntervalSeconds must be positive")
	}
	return nil
}

// PollInterval returns the tick spacing for the sync loop.
func (c Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
