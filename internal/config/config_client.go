package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the client version string reported in logs.
	Version string

	// BiometricCmd is the external fingerprint verification command.
	// Empty selects the platform default.
	BiometricCmd string
}

// ClientBackend holds network settings used by the client transport layer.
type ClientBackend struct {
	// BaseURL is the authenticated API root.
	BaseURL string
	// UserDetailURL is the public employee-ID-to-username lookup endpoint.
	UserDetailURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local settings database connection settings.
type ClientDB struct {
	// DSN is the SQLite file path used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the activity summary refresh job
	// should run.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Backend contains client transport addresses and timeouts.
	Backend ClientBackend
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version:      cfg.App.Version,
			BiometricCmd: cfg.App.BiometricCmd,
		},
		Backend: ClientBackend{
			BaseURL:        cfg.Backend.BaseURL,
			UserDetailURL:  cfg.Backend.UserDetailURL,
			RequestTimeout: cfg.Backend.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}

	return clientCfg, clientCfg.validate()
}
