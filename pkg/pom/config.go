package pom

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the static suite configuration: loaded once before the run,
// read-only afterwards. Precedence: defaults < config file < BLOGWATCH_* env.
type Config struct {
	// BaseURL is the site under test. Empty means the suite starts its
	// own hermetic demo site and tests against that.
	BaseURL  string        `mapstructure:"base_url"`
	Headless bool          `mapstructure:"headless"`
	SlowMo   time.Duration `mapstructure:"slow_mo"`

	// Device selects an emulation profile by name ("iphone-x", "ipad",
	// "pixel-2", "laptop"). Empty means a plain desktop viewport.
	Device   string   `mapstructure:"device"`
	Viewport Viewport `mapstructure:"viewport"`

	Timeouts Timeouts    `mapstructure:"timeouts"`
	Retry    RetryPolicy `mapstructure:"retry"`
	Report   Report      `mapstructure:"report"`
}

// Viewport is the browser window size used when no device profile is set.
type Viewport struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// Timeouts bound individual browser operations.
type Timeouts struct {
	Navigation time.Duration `mapstructure:"navigation"`
	Action     time.Duration `mapstructure:"action"`
}

// RetryPolicy is the budget for the best-effort retry helper.
type RetryPolicy struct {
	Attempts int           `mapstructure:"attempts"`
	Delay    time.Duration `mapstructure:"delay"`
}

// Report configures artifact output (screenshots, link-check reports).
type Report struct {
	Dir     string   `mapstructure:"dir"`
	Formats []string `mapstructure:"formats"`
}

// DefaultConfig returns the built-in defaults. They target the hermetic
// demo site in headless mode.
func DefaultConfig() Config {
	return Config{
		BaseURL:  "",
		Headless: true,
		SlowMo:   0,
		Device:   "",
		Viewport: Viewport{Width: 1280, Height: 800},
		Timeouts: Timeouts{
			Navigation: 30 * time.Second,
			Action:     10 * time.Second,
		},
		Retry: RetryPolicy{
			Attempts: 3,
			Delay:    250 * time.Millisecond,
		},
		Report: Report{
			Dir:     "artifacts",
			Formats: []string{"list", "json"},
		},
	}
}

// LoadConfig loads configuration from path (optional; "" looks for
// blogwatch.yaml in the working directory) and BLOGWATCH_* environment
// overrides on top of the defaults.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix("BLOGWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("blogwatch")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, def Config) {
	v.SetDefault("base_url", def.BaseURL)
	v.SetDefault("headless", def.Headless)
	v.SetDefault("slow_mo", def.SlowMo)
	v.SetDefault("device", def.Device)
	v.SetDefault("viewport.width", def.Viewport.Width)
	v.SetDefault("viewport.height", def.Viewport.Height)
	v.SetDefault("timeouts.navigation", def.Timeouts.Navigation)
	v.SetDefault("timeouts.action", def.Timeouts.Action)
	v.SetDefault("retry.attempts", def.Retry.Attempts)
	v.SetDefault("retry.delay", def.Retry.Delay)
	v.SetDefault("report.dir", def.Report.Dir)
	v.SetDefault("report.formats", def.Report.Formats)
}

// Validate rejects configurations the suite cannot run with.
func Validate(cfg Config) error {
	if cfg.BaseURL != "" {
		u, err := url.Parse(cfg.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("base_url %q is not an absolute URL", cfg.BaseURL)
		}
	}
	if cfg.Timeouts.Navigation <= 0 || cfg.Timeouts.Action <= 0 {
		return errors.New("timeouts must be positive")
	}
	if cfg.Retry.Attempts < 1 {
		return errors.New("retry.attempts must be at least 1")
	}
	if cfg.Viewport.Width <= 0 || cfg.Viewport.Height <= 0 {
		return errors.New("viewport dimensions must be positive")
	}
	if cfg.Device != "" {
		if _, ok := deviceProfile(cfg.Device); !ok {
			return fmt.Errorf("unknown device profile %q (known: %s)",
				cfg.Device, strings.Join(DeviceNames(), ", "))
		}
	}
	return nil
}
