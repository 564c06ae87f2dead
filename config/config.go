package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort   string
	MetricsPort   string
	Environment   string
	LogLevel      string
	BackendConfig BackendConfig
	ListingConfig ListingConfig
	ViewConfig    ViewConfig
	PromoConfig   PromoConfig
	KafkaConfig   KafkaConfig
	TracingConfig TracingConfig
}

type BackendConfig struct {
	BaseURL       string
	Timeout       time.Duration
	EndpointsFile string
	MaxBodyBytes  int64
}

type ListingConfig struct {
	ItemsPerPage int
}

// ViewConfig bounds the per-caller dashboard snapshots kept in memory.
type ViewConfig struct {
	MaxViews int
	TTL      time.Duration
}

type PromoConfig struct {
	Countdown    time.Duration
	TickInterval time.Duration
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
}

type TracingConfig struct {
	CollectorHost string
}

const (
	defaultServicePort    = "8080"
	defaultMetricsPort    = "9090"
	defaultItemsPerPage   = 10
	defaultBackendTimeout = 10 * time.Second
	defaultMaxBodyBytes   = 10 << 20
	defaultMaxViews       = 256
	defaultViewTTL        = 30 * time.Minute
	// 2d 14h 30m 45s
	defaultPromoCountdown = 62*time.Hour + 30*time.Minute + 45*time.Second
)

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: getEnv("SERVICE_PORT", defaultServicePort),
		MetricsPort: getEnv("METRICS_PORT", defaultMetricsPort),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		BackendConfig: BackendConfig{
			BaseURL:       os.Getenv("BACKEND_BASE_URL"),
			Timeout:       getEnvDuration("BACKEND_TIMEOUT", defaultBackendTimeout),
			EndpointsFile: os.Getenv("ENDPOINTS_FILE"),
			MaxBodyBytes:  int64(getEnvInt("BACKEND_MAX_BODY_BYTES", defaultMaxBodyBytes)),
		},
		ListingConfig: ListingConfig{
			ItemsPerPage: getEnvInt("ITEMS_PER_PAGE", defaultItemsPerPage),
		},
		ViewConfig: ViewConfig{
			MaxViews: getEnvInt("DASHBOARD_MAX_VIEWS", defaultMaxViews),
			TTL:      getEnvDuration("DASHBOARD_VIEW_TTL", defaultViewTTL),
		},
		PromoConfig: PromoConfig{
			Countdown:    getEnvDuration("PROMO_COUNTDOWN", defaultPromoCountdown),
			TickInterval: time.Second,
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress:   os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:     os.Getenv("BROKER_TOPIC"),
			BrokerPartition: getEnvInt("BROKER_PARTITION", 0),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	if conf.ListingConfig.ItemsPerPage <= 0 {
		conf.ListingConfig.ItemsPerPage = defaultItemsPerPage
	}
	if conf.ViewConfig.MaxViews <= 0 {
		conf.ViewConfig.MaxViews = defaultMaxViews
	}
	if conf.BackendConfig.MaxBodyBytes <= 0 {
		conf.BackendConfig.MaxBodyBytes = defaultMaxBodyBytes
	}

	return &conf
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil || value < 0 {
		return defaultValue
	}
	return value
}
