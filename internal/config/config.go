package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/OfkoloBai/Osenotify/internal/alert"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultCooldown        = 360 * time.Second
	DefaultJMAThreshold    = "5弱"
	DefaultCEAThreshold    = 7.0
	DefaultJMAFeedURL      = "wss://ws-api.wolfx.jp/jma_eew"
	DefaultCEAFeedURL      = "wss://ws.fanstudio.tech/cea"
	DefaultReconnectDelay  = 5 * time.Second
	DefaultPushTimeout     = 8 * time.Second
	DefaultPushAttempts    = 3
	DefaultPushQueueSize   = 16
	DefaultPushWorkers     = 2
	DefaultPushTokenEnv    = "QUAKE_GOTIFY_APP_TOKEN"
	DefaultDedupTTL        = 24 * time.Hour
	DefaultDedupMaxEntries = 4096
	DefaultLogRetention    = 30 // days
	DefaultSweepInterval   = 24 * time.Hour
	DefaultOpsListen       = ":5000"
)

// Config is the top-level configuration.
// Fields map 1:1 to config.example.yaml.
type Config struct {
	// Cooldown is the minimum spacing between dispatched triggers. The
	// window is shared across all sources.
	Cooldown time.Duration `yaml:"cooldown"`

	Thresholds ThresholdConfig  `yaml:"thresholds"`
	Push       PushConfig       `yaml:"push"`
	Feeds      FeedsConfig      `yaml:"feeds"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Dedup      DedupConfig      `yaml:"dedup"`
	Log        LogConfig        `yaml:"log"`
	Ops        OpsConfig        `yaml:"ops"`
}

// ThresholdConfig holds the per-source trigger levels.
type ThresholdConfig struct {
	// JMA is the minimum JMA intensity label that triggers. Must be one of
	// the scale labels ("0".."4", "5弱", "5強", "6弱", "6強", "7").
	JMA string `yaml:"jma"`

	// CEA is the minimum estimated epicentral intensity that triggers.
	// The comparison is inclusive.
	CEA float64 `yaml:"cea"`
}

// PushConfig configures Gotify notification delivery.
type PushConfig struct {
	// URL is the Gotify server base URL, e.g. https://push.example.org.
	URL string `yaml:"url"`

	// TokenEnv is the name of the environment variable that holds the
	// Gotify application token.
	TokenEnv string `yaml:"token_env"`

	// Timeout bounds one delivery attempt.
	Timeout time.Duration `yaml:"timeout"`

	// MaxAttempts is the per-notification delivery budget.
	MaxAttempts int `yaml:"max_attempts"`

	// QueueSize caps the number of notifications pending delivery. On
	// overflow the oldest pending notification is dropped.
	QueueSize int `yaml:"queue_size"`

	// Workers is the number of concurrent delivery workers.
	Workers int `yaml:"workers"`
}

// Token returns the Gotify application token resolved from the environment.
// Returns empty string if TokenEnv is unset or the variable is not found.
func (p PushConfig) Token() string {
	if p.TokenEnv == "" {
		return ""
	}
	return os.Getenv(p.TokenEnv)
}

// FeedsConfig holds the upstream websocket endpoints.
type FeedsConfig struct {
	// JMA is the websocket URL of the JMA early-warning feed.
	JMA string `yaml:"jma"`

	// CEA is the websocket URL of the CEA early-warning feed.
	CEA string `yaml:"cea"`

	// ReconnectDelay is the fixed wait before re-dialing a lost feed.
	ReconnectDelay time.Duration `yaml:"reconnect_delay"`
}

// MonitoringConfig holds the initial monitoring switch. It is the only
// setting applied on live reload; everything else needs a restart.
type MonitoringConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DedupConfig bounds the set of event IDs remembered for duplicate
// suppression.
type DedupConfig struct {
	// TTL is how long a triggered event ID stays suppressed.
	TTL time.Duration `yaml:"ttl"`

	// MaxEntries caps the remembered IDs; the oldest are evicted first.
	MaxEntries int `yaml:"max_entries"`
}

// LogConfig configures file logging and retention.
type LogConfig struct {
	// Dir is the directory for timestamped log files. Empty disables file
	// logging; records still go to stdout.
	Dir string `yaml:"dir"`

	// RetentionDays is how long log files are kept before the periodic
	// sweep removes them.
	RetentionDays int `yaml:"retention_days"`

	// SweepInterval is how often the retention sweep runs.
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// OpsConfig configures the operational HTTP endpoint.
type OpsConfig struct {
	// Listen is the address for health, metrics and the test-alert API.
	Listen string `yaml:"listen"`
}

// Load builds the configuration: defaults first, then the YAML file at path
// if path is non-empty, then the QUAKE_* environment overrides, then
// validation. Any failure is fatal to startup by design; a config error
// must never surface mid-ingestion.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// defaults returns a Config pre-populated with default values.
func defaults() *Config {
	return &Config{
		Cooldown: DefaultCooldown,
		Thresholds: ThresholdConfig{
			JMA: DefaultJMAThreshold,
			CEA: DefaultCEAThreshold,
		},
		Push: PushConfig{
			TokenEnv:    DefaultPushTokenEnv,
			Timeout:     DefaultPushTimeout,
			MaxAttempts: DefaultPushAttempts,
			QueueSize:   DefaultPushQueueSize,
			Workers:     DefaultPushWorkers,
		},
		Feeds: FeedsConfig{
			JMA:            DefaultJMAFeedURL,
			CEA:            DefaultCEAFeedURL,
			ReconnectDelay: DefaultReconnectDelay,
		},
		Monitoring: MonitoringConfig{Enabled: true},
		Dedup: DedupConfig{
			TTL:        DefaultDedupTTL,
			MaxEntries: DefaultDedupMaxEntries,
		},
		Log: LogConfig{
			RetentionDays: DefaultLogRetention,
			SweepInterval: DefaultSweepInterval,
		},
		Ops: OpsConfig{Listen: DefaultOpsListen},
	}
}

// applyEnv overlays the QUAKE_* environment variables onto cfg. A variable
// that is set but unparsable is an error, not a silent fallback.
func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv("QUAKE_COOLDOWN"); ok {
		secs, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("QUAKE_COOLDOWN %q: %w", v, err)
		}
		cfg.Cooldown = time.Duration(secs) * time.Second
	}
	if v, ok := os.LookupEnv("QUAKE_TRIGGER_JMA_INTENSITY"); ok {
		cfg.Thresholds.JMA = v
	}
	if v, ok := os.LookupEnv("QUAKE_TRIGGER_CEA_INTENSITY"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("QUAKE_TRIGGER_CEA_INTENSITY %q: %w", v, err)
		}
		cfg.Thresholds.CEA = f
	}
	if v, ok := os.LookupEnv("QUAKE_GOTIFY_URL"); ok {
		cfg.Push.URL = v
	}
	if v, ok := os.LookupEnv("QUAKE_WS_JMA"); ok {
		cfg.Feeds.JMA = v
	}
	if v, ok := os.LookupEnv("QUAKE_WS_CEA"); ok {
		cfg.Feeds.CEA = v
	}
	if v, ok := os.LookupEnv("QUAKE_LOG_DIR"); ok {
		cfg.Log.Dir = v
	}
	return nil
}

// validate checks required fields and structural constraints.
func validate(cfg *Config) error {
	if cfg.Cooldown < 0 {
		return fmt.Errorf("cooldown must not be negative")
	}
	if !alert.KnownIntensity(cfg.Thresholds.JMA) {
		return fmt.Errorf("thresholds.jma %q is not a JMA intensity label", cfg.Thresholds.JMA)
	}
	if cfg.Thresholds.CEA <= 0 {
		return fmt.Errorf("thresholds.cea must be positive")
	}
	if cfg.Push.URL == "" {
		return fmt.Errorf("push.url is required (or set QUAKE_GOTIFY_URL)")
	}
	if cfg.Push.Token() == "" {
		return fmt.Errorf("push token is required: set %s", cfg.Push.TokenEnv)
	}
	if cfg.Push.Timeout <= 0 {
		return fmt.Errorf("push.timeout must be positive")
	}
	if cfg.Push.MaxAttempts < 1 {
		return fmt.Errorf("push.max_attempts must be at least 1")
	}
	if cfg.Push.QueueSize < 1 {
		return fmt.Errorf("push.queue_size must be at least 1")
	}
	if cfg.Push.Workers < 1 {
		return fmt.Errorf("push.workers must be at least 1")
	}
	if cfg.Feeds.JMA == "" {
		return fmt.Errorf("feeds.jma is required")
	}
	if cfg.Feeds.CEA == "" {
		return fmt.Errorf("feeds.cea is required")
	}
	if cfg.Feeds.ReconnectDelay <= 0 {
		return fmt.Errorf("feeds.reconnect_delay must be positive")
	}
	if cfg.Dedup.TTL <= 0 {
		return fmt.Errorf("dedup.ttl must be positive")
	}
	if cfg.Dedup.MaxEntries < 1 {
		return fmt.Errorf("dedup.max_entries must be at least 1")
	}
	if cfg.Log.RetentionDays < 1 {
		return fmt.Errorf("log.retention_days must be at least 1")
	}
	if cfg.Log.SweepInterval <= 0 {
		return fmt.Errorf("log.sweep_interval must be positive")
	}
	if cfg.Ops.Listen == "" {
		return fmt.Errorf("ops.listen is required")
	}
	return nil
}
