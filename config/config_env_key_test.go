package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"geocoding": map[string]any{
			"apiKey": "",
			"cache": map[string]any{
				"ttl": "24h",
			},
		},
		"addresses": map[string]any{
			"ownerTypes": []any{"user"},
			"migrations": map[string]any{
				"autoload": true,
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "GEOCODING_APIKEY", want: "geocoding.apiKey"},
		{envKey: "GEOCODING_CACHE_TTL", want: "geocoding.cache.ttl"},
		{envKey: "ADDRESSES_OWNERTYPES", want: "addresses.ownerTypes"},
		{envKey: "ADDRESSES_MIGRATIONS_AUTOLOAD", want: "addresses.migrations.autoload"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
