package config

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	require.Equal(t, 4, c.Order)
	require.Equal(t, int64(1024), c.CacheSize)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"order too small", func(c *Config) { c.Order = 2 }},
		{"negative cache", func(c *Config) { c.CacheSize = -1 }},
		{"unknown level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			require.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}

func TestFromLookup(t *testing.T) {
	env := map[string]string{
		"BPTREE_ORDER":        "16",
		"BPTREE_LOG_LEVEL":    "debug",
		"BPTREE_CACHE_SIZE":   "0",
		"BPTREE_METRICS_ADDR": ":9100",
		"BPTREE_INTERACTIVE":  "true",
	}
	c := Default()
	require.NoError(t, c.fromLookup(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}))
	require.Equal(t, Config{Order: 16, LogLevel: "debug", CacheSize: 0, MetricsAddr: ":9100", Interactive: true}, c)
}

func TestFromLookupBadValue(t *testing.T) {
	c := Default()
	err := c.fromLookup(func(k string) (string, bool) {
		if k == "BPTREE_ORDER" {
			return "four", true
		}
		return "", false
	})
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.Equal(t, 4, c.Order)
}

func TestBindFlags(t *testing.T) {
	c := Default()
	cmd := &cobra.Command{Use: "x", RunE: func(*cobra.Command, []string) error { return nil }}
	c.BindFlags(cmd)
	cmd.SetArgs([]string{"--order", "8", "--cache-size", "0", "--interactive"})
	require.NoError(t, cmd.Execute())

	require.Equal(t, 8, c.Order)
	require.Equal(t, int64(0), c.CacheSize)
	require.True(t, c.Interactive)
	require.Equal(t, "warn", c.LogLevel)
}
