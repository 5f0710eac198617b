package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the application version reported to the server.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the base URL of the sync server.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// AuthToken is the bearer token presented on sync requests.
	AuthToken string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DBPath is the SQLite database file path for the local store.
	DBPath string
	// DeviceIdentityPath is the device identity file path.
	DeviceIdentityPath string
}

// ClientSync contains client sync engine settings.
type ClientSync struct {
	// BatchSize is the maximum number of entities per push request.
	BatchSize int
	// Interval defines how often the background sync job runs.
	Interval time.Duration
	// InitialBackoff is the delay before the first retry of a failed round.
	InitialBackoff time.Duration
	// MaxBackoff caps the exponential retry delay.
	MaxBackoff time.Duration
}

// ClientDevice contains device identity settings.
type ClientDevice struct {
	// Platform is the platform label recorded in the identity file.
	Platform string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Sync contains sync engine settings.
	Sync ClientSync
	// Device contains device identity settings.
	Device ClientDevice
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
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			AuthToken:      cfg.Adapter.AuthToken,
		},
		Storage: ClientStorage{
			DBPath:             cfg.Storage.Local.DBPath,
			DeviceIdentityPath: cfg.Storage.Local.DeviceIdentityPath,
		},
		Sync: ClientSync{
			BatchSize:      cfg.Sync.BatchSize,
			Interval:       cfg.Sync.Interval,
			InitialBackoff: cfg.Sync.InitialBackoff,
			MaxBackoff:     cfg.Sync.MaxBackoff,
		},
		Device: ClientDevice{
			Platform: cfg.Device.Platform,
		},
	}

	return clientCfg, clientCfg.validate()
}
