package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Adapter modes. A stub adapter answers with synthetic data and never talks
// to the external service; the mode is fixed at startup.
const (
	ModeLive = "live"
	ModeStub = "stub"
)

type Config struct {
	App       AppConfig
	Log       LogConfig
	Database  DatabaseConfig
	Identity  IdentityConfig
	Storage   StorageConfig
	Billing   BillingConfig
	AI        AIConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name            string
	Env             string
	Port            string
	Debug           bool
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
	// Path is the SQLite DSN when Driver is "sqlite".
	Path string
}

type IdentityConfig struct {
	Provider       string
	JWTSecret      string
	JWTIssuer      string
	JWTExpiry      time.Duration
	GoogleAudience string
}

type StorageConfig struct {
	Mode          string
	Path          string
	PublicBaseURL string
	UploadMaxSize int64
}

type BillingConfig struct {
	Mode             string
	StripeSecretKey  string
	WebhookSecret    string
	WebhookTolerance time.Duration
	SuccessURL       string
	CancelURL        string
	PortalReturnURL  string
	// Plans maps public plan ids to Stripe price ids.
	Plans map[string]string
}

type AIConfig struct {
	Mode   string
	APIKey string
	Model  string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "bizdesk-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("APP_READ_TIMEOUT_SECONDS", 15)
	viper.SetDefault("APP_WRITE_TIMEOUT_SECONDS", 30)
	viper.SetDefault("APP_SHUTDOWN_TIMEOUT_SECONDS", 10)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("DB_DRIVER", "postgres")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "bizdesk")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Europe/Amsterdam")
	viper.SetDefault("DB_PATH", "bizdesk.db")
	viper.SetDefault("IDENTITY_PROVIDER", "jwt")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_ISSUER", "bizdesk-api")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("STORAGE_MODE", ModeLive)
	viper.SetDefault("STORAGE_PATH", "./storage")
	viper.SetDefault("STORAGE_PUBLIC_BASE_URL", "http://localhost:8080/uploads")
	viper.SetDefault("UPLOAD_MAX_SIZE", 10485760)
	viper.SetDefault("BILLING_MODE", ModeStub)
	viper.SetDefault("STRIPE_WEBHOOK_TOLERANCE_SECONDS", 300)
	viper.SetDefault("BILLING_SUCCESS_URL", "http://localhost:3000/billing/success")
	viper.SetDefault("BILLING_CANCEL_URL", "http://localhost:3000/billing")
	viper.SetDefault("BILLING_PORTAL_RETURN_URL", "http://localhost:3000/billing")
	viper.SetDefault("BILLING_PLANS", "starter:price_starter,pro:price_pro")
	viper.SetDefault("AI_MODE", ModeStub)
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:            viper.GetString("APP_NAME"),
			Env:             viper.GetString("APP_ENV"),
			Port:            viper.GetString("APP_PORT"),
			Debug:           viper.GetBool("APP_DEBUG"),
			ReadTimeout:     time.Duration(viper.GetInt("APP_READ_TIMEOUT_SECONDS")) * time.Second,
			WriteTimeout:    time.Duration(viper.GetInt("APP_WRITE_TIMEOUT_SECONDS")) * time.Second,
			ShutdownTimeout: time.Duration(viper.GetInt("APP_SHUTDOWN_TIMEOUT_SECONDS")) * time.Second,
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
		Database: DatabaseConfig{
			Driver:   viper.GetString("DB_DRIVER"),
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
			Path:     viper.GetString("DB_PATH"),
		},
		Identity: IdentityConfig{
			Provider:       viper.GetString("IDENTITY_PROVIDER"),
			JWTSecret:      viper.GetString("JWT_SECRET"),
			JWTIssuer:      viper.GetString("JWT_ISSUER"),
			JWTExpiry:      time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
			GoogleAudience: viper.GetString("GOOGLE_AUDIENCE"),
		},
		Storage: StorageConfig{
			Mode:          viper.GetString("STORAGE_MODE"),
			Path:          viper.GetString("STORAGE_PATH"),
			PublicBaseURL: viper.GetString("STORAGE_PUBLIC_BASE_URL"),
			UploadMaxSize: viper.GetInt64("UPLOAD_MAX_SIZE"),
		},
		Billing: BillingConfig{
			Mode:             viper.GetString("BILLING_MODE"),
			StripeSecretKey:  viper.GetString("STRIPE_SECRET_KEY"),
			WebhookSecret:    viper.GetString("STRIPE_WEBHOOK_SECRET"),
			WebhookTolerance: time.Duration(viper.GetInt("STRIPE_WEBHOOK_TOLERANCE_SECONDS")) * time.Second,
			SuccessURL:       viper.GetString("BILLING_SUCCESS_URL"),
			CancelURL:        viper.GetString("BILLING_CANCEL_URL"),
			PortalReturnURL:  viper.GetString("BILLING_PORTAL_RETURN_URL"),
			Plans:            ParsePlans(viper.GetString("BILLING_PLANS")),
		},
		AI: AIConfig{
			Mode:   viper.GetString("AI_MODE"),
			APIKey: viper.GetString("GEMINI_API_KEY"),
			Model:  viper.GetString("GEMINI_MODEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}

// Validate checks the adapter modes and the credentials live mode needs.
func (c *Config) Validate() error {
	for name, mode := range map[string]string{
		"STORAGE_MODE": c.Storage.Mode,
		"BILLING_MODE": c.Billing.Mode,
		"AI_MODE":      c.AI.Mode,
	} {
		if mode != ModeLive && mode != ModeStub {
			return fmt.Errorf("%s must be %q or %q, got %q", name, ModeLive, ModeStub, mode)
		}
	}

	if c.Billing.Mode == ModeLive && c.Billing.StripeSecretKey == "" {
		return fmt.Errorf("BILLING_MODE=live requires STRIPE_SECRET_KEY")
	}
	if c.Billing.Mode == ModeLive && c.Billing.WebhookSecret == "" {
		return fmt.Errorf("BILLING_MODE=live requires STRIPE_WEBHOOK_SECRET")
	}
	if c.AI.Mode == ModeLive && c.AI.APIKey == "" {
		return fmt.Errorf("AI_MODE=live requires GEMINI_API_KEY")
	}
	if c.Storage.Mode == ModeLive && c.Storage.Path == "" {
		return fmt.Errorf("STORAGE_MODE=live requires STORAGE_PATH")
	}

	switch c.Identity.Provider {
	case "jwt":
		if c.Identity.JWTSecret == "" {
			return fmt.Errorf("IDENTITY_PROVIDER=jwt requires JWT_SECRET")
		}
	case "google":
		if c.Identity.GoogleAudience == "" {
			return fmt.Errorf("IDENTITY_PROVIDER=google requires GOOGLE_AUDIENCE")
		}
	default:
		return fmt.Errorf("unknown IDENTITY_PROVIDER %q", c.Identity.Provider)
	}

	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.Database.Driver)
	}

	return nil
}

// ParsePlans reads "plan:price,plan:price" into a map.
func ParsePlans(raw string) map[string]string {
	plans := make(map[string]string)
	for _, entry := range strings.Split(raw, ",") {
		planID, priceID, ok := strings.Cut(strings.TrimSpace(entry), ":")
		if !ok {
			continue
		}
		planID = strings.TrimSpace(planID)
		priceID = strings.TrimSpace(priceID)
		if planID == "" || priceID == "" {
			continue
		}
		plans[planID] = priceID
	}
	return plans
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
