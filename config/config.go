package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Config holds every knob of the index server.
type Config struct {
	Order       int
	LogLevel    string
	CacheSize   int64
	MetricsAddr string
	Interactive bool
}

const envPrefix = "BPTREE_"

var ErrInvalidConfig = errors.New("invalid config")

func Default() Config {
	return Config{
		Order:       4,
		LogLevel:    "warn",
		CacheSize:   1024,
		MetricsAddr: "",
		Interactive: false,
	}
}

// FromEnv overlays BPTREE_ORDER, BPTREE_LOG_LEVEL, BPTREE_CACHE_SIZE,
// BPTREE_METRICS_ADDR and BPTREE_INTERACTIVE onto c. Unset variables leave
// the field alone.
func (c *Config) FromEnv() error {
	return c.fromLookup(os.LookupEnv)
}

func (c *Config) fromLookup(lookup func(string) (string, bool)) error {
	if v, ok := lookup(envPrefix + "ORDER"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %sORDER=%q: %v", ErrInvalidConfig, envPrefix, v, err)
		}
		c.Order = n
	}
	if v, ok := lookup(envPrefix + "LOG_LEVEL"); ok {
		c.LogLevel = strings.TrimSpace(v)
	}
	if v, ok := lookup(envPrefix + "CACHE_SIZE"); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sCACHE_SIZE=%q: %v", ErrInvalidConfig, envPrefix, v, err)
		}
		c.CacheSize = n
	}
	if v, ok := lookup(envPrefix + "METRICS_ADDR"); ok {
		c.MetricsAddr = strings.TrimSpace(v)
	}
	if v, ok := lookup(envPrefix + "INTERACTIVE"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %sINTERACTIVE=%q: %v", ErrInvalidConfig, envPrefix, v, err)
		}
		c.Interactive = b
	}
	return nil
}

// BindFlags registers the persistent flags of cmd with c's current values
// as defaults, so environment values show up as flag defaults and explicit
// flags win.
func (c *Config) BindFlags(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()
	fs.IntVar(&c.Order, "order", c.Order, "tree order: leaves split at this many keys, internal nodes above this many children")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "logrus level written to stderr (trace, debug, info, warn, error)")
	fs.Int64Var(&c.CacheSize, "cache-size", c.CacheSize, "entries kept in the lookup cache, 0 disables it")
	fs.StringVar(&c.MetricsAddr, "metrics-addr", c.MetricsAddr, "serve prometheus metrics on this address, empty disables it")
	fs.BoolVar(&c.Interactive, "interactive", c.Interactive, "line editing prompt with history instead of the plain protocol loop")
}

func (c Config) Validate() error {
	if c.Order < 3 {
		return fmt.Errorf("%w: order must be >= 3, got %d", ErrInvalidConfig, c.Order)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("%w: cache-size must be >= 0, got %d", ErrInvalidConfig, c.CacheSize)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
