package config

import "time"

const (
	defaultPort            = 8080
	defaultMyParcelBaseURL = "https://api.myparcel.nl"
	defaultClientTimeout   = 10 * time.Second
	defaultPipelineTimeout = 30 * time.Second
)

// DefaultPort returns the default HTTP port.
func DefaultPort() int {
	return defaultPort
}

// DefaultMyParcelBaseURL returns the default carrier API base URL.
func DefaultMyParcelBaseURL() string {
	return defaultMyParcelBaseURL
}

// DefaultClientTimeout returns the default per-call timeout for outbound HTTP.
func DefaultClientTimeout() time.Duration {
	return defaultClientTimeout
}

// DefaultPipelineTimeout returns the default end-to-end pipeline timeout.
func DefaultPipelineTimeout() time.Duration {
	return defaultPipelineTimeout
}
