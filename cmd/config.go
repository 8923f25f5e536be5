package cmd

import "time"

type Config struct {
	HTTPPort          string
	OrderServiceURL   string
	CourierServiceURL string
	DocServiceURL     string
	ManifestOutputDir string
	SessionTTL        time.Duration
}
