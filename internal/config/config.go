package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// SAP stores the ERP service-layer endpoint and tenant credentials.
type SAP struct {
	BaseURL   string
	CompanyDB string
	Username  string
	Password  string
}

// MyParcel stores the carrier endpoint and API token.
type MyParcel struct {
	BaseURL string
	APIKey  string
}

// Pprof stores the optional debug server settings. Empty Addr disables it.
type Pprof struct {
	Addr string
	User string
	Pass string
}

// Config stores the service settings.
type Config struct {
	Port            int
	SAP             SAP
	MyParcel        MyParcel
	Pprof           Pprof
	ClientTimeout   time.Duration
	PipelineTimeout time.Duration
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port: DefaultPort(),
		SAP: SAP{
			BaseURL:   os.Getenv("SAP_BASE_URL"),
			CompanyDB: os.Getenv("SAP_COMPANY_DB"),
			Username:  os.Getenv("SAP_USERNAME"),
			Password:  os.Getenv("SAP_PASSWORD"),
		},
		MyParcel: MyParcel{
			BaseURL: DefaultMyParcelBaseURL(),
			APIKey:  os.Getenv("MYPARCEL_API_KEY"),
		},
		Pprof: Pprof{
			Addr: os.Getenv("PPROF_ADDR"),
			User: os.Getenv("PPROF_USER"),
			Pass: os.Getenv("PPROF_PASS"),
		},
		ClientTimeout:   DefaultClientTimeout(),
		PipelineTimeout: DefaultPipelineTimeout(),
	}

	if v := os.Getenv("MYPARCEL_BASE_URL"); v != "" {
		cfg.MyParcel.BaseURL = v
	}

	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %q", v)
		}
		cfg.Port = p
	}

	var err error
	if cfg.ClientTimeout, err = durationEnv("HTTP_CLIENT_TIMEOUT", cfg.ClientTimeout); err != nil {
		return nil, err
	}
	if cfg.PipelineTimeout, err = durationEnv("PIPELINE_TIMEOUT", cfg.PipelineTimeout); err != nil {
		return nil, err
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.Parse()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return d, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.SAP.BaseURL == "" {
		return fmt.Errorf("SAP_BASE_URL is required")
	}
	if c.SAP.CompanyDB == "" {
		return fmt.Errorf("SAP_COMPANY_DB is required")
	}
	if c.SAP.Username == "" || c.SAP.Password == "" {
		return fmt.Errorf("SAP_USERNAME and SAP_PASSWORD are required")
	}
	if c.MyParcel.APIKey == "" {
		return fmt.Errorf("MYPARCEL_API_KEY is required")
	}
	if c.ClientTimeout <= 0 || c.PipelineTimeout <= 0 {
		return fmt.Errorf("timeouts must be positive")
	}
	return nil
}
