package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsEmptySections(t *testing.T) {
	cfg := &Config{}

	ApplyDefaults(cfg)

	require.NotNil(t, cfg.Addresses)
	assert.Equal(t, []string{"user", "merchant"}, cfg.Addresses.OwnerTypes)
	assert.Equal(t, []string{"primary", "billing", "shipping"}, cfg.Addresses.Flags)
	assert.True(t, cfg.Addresses.Migrations.Autoload)
	assert.Equal(t, defaultMigrationsDir, cfg.Addresses.Migrations.Dir)

	require.NotNil(t, cfg.Geocoding)
	assert.False(t, cfg.Geocoding.Enabled)
	assert.Equal(t, DefaultGeocodingEndpoint, cfg.Geocoding.Endpoint)
	assert.Equal(t, 5*time.Second, cfg.Geocoding.Timeout)
	assert.Equal(t, 24*time.Hour, cfg.Geocoding.Cache.TTL)

	require.NotNil(t, cfg.Metrics)
	assert.Equal(t, "addressable", cfg.Metrics.Namespace)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Addresses: &AddressesConfig{
			OwnerTypes: []string{"company"},
			Flags:      []string{"billing"},
			Migrations: MigrationsConfig{Dir: "db/addresses"},
		},
		Geocoding: &GeocodingConfig{
			Enabled:  true,
			Endpoint: "http://localhost:9999/geocode",
			Timeout:  time.Second,
		},
	}

	ApplyDefaults(cfg)

	assert.Equal(t, []string{"company"}, cfg.Addresses.OwnerTypes)
	assert.Equal(t, []string{"billing"}, cfg.Addresses.Flags)
	assert.False(t, cfg.Addresses.Migrations.Autoload)
	assert.Equal(t, "db/addresses", cfg.Addresses.Migrations.Dir)
	assert.Equal(t, "http://localhost:9999/geocode", cfg.Geocoding.Endpoint)
	assert.Equal(t, time.Second, cfg.Geocoding.Timeout)
}

func TestIsProduction(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.IsProduction())

	cfg.Env.Env = " Production "
	assert.True(t, cfg.IsProduction())
}

func TestLoadWithEnv_ReadsYAMLAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	yamlContent := `
env:
  env: local
  serviceName: addressable
http:
  port: 8080
  timeouts:
    readTimeout: 3s
addresses:
  flags:
    - primary
    - billing
  extraRules:
    label: "required,max=20"
geocoding:
  enabled: true
  apiKey: ""
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yamlContent), 0o600))
	t.Chdir(dir)
	t.Setenv("GEOCODING_APIKEY", "secret-key")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "addressable", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 3*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	require.NotNil(t, cfg.Addresses)
	assert.Equal(t, []string{"primary", "billing"}, cfg.Addresses.Flags)
	assert.Equal(t, "required,max=20", cfg.Addresses.ExtraRules["label"])
	require.NotNil(t, cfg.Geocoding)
	assert.True(t, cfg.Geocoding.Enabled)
	assert.Equal(t, "secret-key", cfg.Geocoding.APIKey)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}
