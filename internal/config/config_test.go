package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Database: DatabaseConfig{Driver: "sqlite"},
		Identity: IdentityConfig{Provider: "jwt", JWTSecret: "secret"},
		Storage:  StorageConfig{Mode: ModeStub},
		Billing:  BillingConfig{Mode: ModeStub},
		AI:       AIConfig{Mode: ModeStub},
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "unknown billing mode", mutate: func(c *Config) { c.Billing.Mode = "auto" }},
		{name: "live billing without key", mutate: func(c *Config) { c.Billing.Mode = ModeLive }},
		{name: "live billing without webhook secret", mutate: func(c *Config) {
			c.Billing.Mode = ModeLive
			c.Billing.StripeSecretKey = "sk_test"
		}},
		{name: "live ai without key", mutate: func(c *Config) { c.AI.Mode = ModeLive }},
		{name: "live storage without path", mutate: func(c *Config) { c.Storage.Mode = ModeLive }},
		{name: "google without audience", mutate: func(c *Config) { c.Identity.Provider = "google" }},
		{name: "unknown provider", mutate: func(c *Config) { c.Identity.Provider = "firebase" }},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "mysql" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestParsePlans(t *testing.T) {
	plans := ParsePlans(" starter:price_1 , pro:price_2,broken,:price_3,empty: ")
	assert.Equal(t, map[string]string{"starter": "price_1", "pro": "price_2"}, plans)
}
