package swc

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// EnvBaseURL names the environment variable consulted when no base URL is
// passed to [NewConfig].
const EnvBaseURL = "SWC_API_BASE_URL"

// Bulk file formats understood by the file host.
const (
	BulkFormatCSV     = "csv"
	BulkFormatParquet = "parquet"
)

const (
	keyBaseURL        = "base_url"
	keyBackoff        = "backoff"
	keyBackoffMaxTime = "backoff_max_time"
	keyBulkFileFormat = "bulk_file_format"

	defaultBackoffMaxTime = 30 * time.Second
)

// Config holds the resolved SDK settings. Build it with [NewConfig] so the
// environment fallback and defaults are applied.
type Config struct {
	BaseURL        string
	Backoff        bool
	BackoffMaxTime time.Duration
	BulkFileFormat string
}

// ConfigOption sets one value consulted by [NewConfig].
type ConfigOption func(v *viper.Viper)

// WithBaseURL sets the API base URL, taking precedence over SWC_API_BASE_URL.
// An empty value is ignored.
func WithBaseURL(baseURL string) ConfigOption {
	return func(v *viper.Viper) {
		if baseURL != "" {
			v.Set(keyBaseURL, baseURL)
		}
	}
}

// WithBackoff toggles retries with exponential backoff. Enabled by default.
func WithBackoff(enabled bool) ConfigOption {
	return func(v *viper.Viper) {
		v.Set(keyBackoff, enabled)
	}
}

// WithBackoffMaxTime bounds the total time spent retrying one call.
// Defaults to 30s.
func WithBackoffMaxTime(d time.Duration) ConfigOption {
	return func(v *viper.Viper) {
		v.Set(keyBackoffMaxTime, d)
	}
}

// WithBulkFileFormat selects the bulk file format, "csv" (default) or
// "parquet". The value is stored verbatim.
func WithBulkFileFormat(format string) ConfigOption {
	return func(v *viper.Viper) {
		v.Set(keyBulkFileFormat, format)
	}
}

// NewConfig resolves a Config from explicit options, then the environment,
// then defaults. It fails with [ErrBaseURLRequired] when no base URL is found.
func NewConfig(opts ...ConfigOption) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if err := v.BindEnv(keyBaseURL, EnvBaseURL); err != nil {
		return nil, fmt.Errorf("%w: binding %s: %w", ErrInvalidConfig, EnvBaseURL, err)
	}

	for _, opt := range opts {
		opt(v)
	}

	cfg := &Config{
		BaseURL:        v.GetString(keyBaseURL),
		Backoff:        v.GetBool(keyBackoff),
		BackoffMaxTime: v.GetDuration(keyBackoffMaxTime),
		BulkFileFormat: v.GetString(keyBulkFileFormat),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyBackoff, true)
	v.SetDefault(keyBackoffMaxTime, defaultBackoffMaxTime)
	v.SetDefault(keyBulkFileFormat, BulkFormatCSV)
}

// Validate checks a Config, including one built as a struct literal.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if c.BaseURL == "" {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, ErrBaseURLRequired)
	}

	if c.Backoff && c.BackoffMaxTime <= 0 {
		return fmt.Errorf("%w: backoff max time must be positive, got %v", ErrInvalidConfig, c.BackoffMaxTime)
	}

	return nil
}

// String renders the base URL, backoff flag, backoff max time in seconds and
// bulk file format, space separated.
func (c *Config) String() string {
	return fmt.Sprintf("%s %t %s %s",
		c.BaseURL,
		c.Backoff,
		strconv.FormatFloat(c.BackoffMaxTime.Seconds(), 'f', -1, 64),
		c.BulkFileFormat,
	)
}

// bulkFileExtension picks the bulk file extension. Only the exact value
// "parquet" selects parquet files.
func (c *Config) bulkFileExtension() string {
	if c.BulkFileFormat == BulkFormatParquet {
		return ".parquet"
	}

	return ".csv"
}
