package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-b/-backend backend API base URL
//	-user-detail-url public endpoint resolving employee IDs to usernames
//	-d local settings database file path
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-refresh-interval activity summary refresh interval (e.g., "5m")
func ParseFlags() *StructuredConfig {
	var backendURL string
	var userDetailURL string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var refreshInterval time.Duration

	flag.StringVar(&backendURL, "b", "", "Backend API base URL")
	flag.StringVar(&backendURL, "backend", "", "Backend API base URL (alias)")
	flag.StringVar(&userDetailURL, "user-detail-url", "", "User detail lookup URL")
	flag.StringVar(&databaseDSN, "d", "", "Local settings database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Activity refresh interval (e.g., 5m)")

	flag.Parse()

	return &StructuredConfig{
		Backend: Backend{
			BaseURL:        backendURL,
			UserDetailURL:  userDetailURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
