package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ytget/infobar/internal/infobar"
)

var ErrNoConfigFile = errors.New("no config file to watch")

// AppConfig holds the process configuration of the demo.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// AppID is the Fyne application ID, it scopes stored preferences.
	AppID string `mapstructure:"INFOBAR_APP_ID" default:"com.ytget.infobar" required:"true"`
	// Environment specifies the runtime environment (development, production).
	Environment string `mapstructure:"INFOBAR_ENV" default:"development"`
	// LogLevel defines the logging verbosity.
	LogLevel string `mapstructure:"INFOBAR_LOG_LEVEL" default:"info"`

	Timing TimingConfig `mapstructure:",squash"`
}

// TimingConfig holds banner and connectivity timings
type TimingConfig struct {
	ShortDuration time.Duration `mapstructure:"INFOBAR_SHORT_DURATION" default:"4s"`
	LongDuration  time.Duration `mapstructure:"INFOBAR_LONG_DURATION" default:"10s"`
	ExitBuffer    time.Duration `mapstructure:"INFOBAR_EXIT_BUFFER" default:"100ms"`
	// ProbeInterval is how often network interfaces are polled.
	ProbeInterval time.Duration `mapstructure:"INFOBAR_PROBE_INTERVAL" default:"2s"`
}

// DurationPolicy returns the banner budgets
func (c *AppConfig) DurationPolicy() infobar.DurationPolicy {
	return infobar.DurationPolicy{Short: c.Timing.ShortDuration, Long: c.Timing.LongDuration}
}

// HostStateOptions returns the state machine options derived from the config
func (c *AppConfig) HostStateOptions() []infobar.Option {
	return []infobar.Option{
		infobar.WithDurationPolicy(c.DurationPolicy()),
		infobar.WithExitBuffer(c.Timing.ExitBuffer),
	}
}

// LoadOption customizes Load
type LoadOption func(*viper.Viper) error

// WithFlag binds a command line flag to a config key. Set flags take
// precedence over the environment and the config file.
func WithFlag(key string, flag *pflag.Flag) LoadOption {
	return func(v *viper.Viper) error {
		if flag == nil {
			return nil
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag.Name, err)
		}
		return nil
	}
}

// Load loads configuration from a .env file in path and environment variables.
func Load(path string, opts ...LoadOption) (*AppConfig, error) {
	v, err := newViper(path, opts...)
	if err != nil {
		return nil, err
	}
	return decode(v)
}

// Watcher reloads the configuration when the config file changes
type Watcher struct {
	v        *viper.Viper
	mu       sync.Mutex
	current  *AppConfig
	onChange func(*AppConfig)
	onError  func(error)
	stopped  bool
}

// Watch loads the configuration and calls onChange with every valid reload.
// It returns ErrNoConfigFile if path holds no .env file.
func Watch(path string, onChange func(*AppConfig), onError func(error), opts ...LoadOption) (*Watcher, error) {
	v, err := newViper(path, opts...)
	if err != nil {
		return nil, err
	}
	if v.ConfigFileUsed() == "" {
		return nil, ErrNoConfigFile
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}

	w := &Watcher{v: v, current: cfg, onChange: onChange, onError: onError}
	v.OnConfigChange(w.handle)
	v.WatchConfig()
	return w, nil
}

// Current returns the last valid configuration
func (w *Watcher) Current() *AppConfig {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Stop detaches the callbacks. viper keeps its file watch until the process
// exits, so later events are ignored rather than unwatched.
func (w *Watcher) Stop() {
	w.mu.Lock()
	w.stopped = true
	w.mu.Unlock()
}

func (w *Watcher) isStopped() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stopped
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	if w.isStopped() {
		return
	}

	cfg, err := decode(w.v)
	if err != nil {
		if w.onError != nil {
			w.onError(fmt.Errorf("reload %s: %w", event.Name, err))
		}
		return
	}

	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.current = cfg
	w.mu.Unlock()

	if w.onChange != nil {
		w.onChange(cfg)
	}
}

func newViper(path string, opts ...LoadOption) (*viper.Viper, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := processTags(v, &AppConfig{}); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func decode(v *viper.Viper) (*AppConfig, error) {
	var config AppConfig

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	if err := validateTiming(config.Timing); err != nil {
		return nil, err
	}

	return &config, nil
}

func validateTiming(t TimingConfig) error {
	if t.ShortDuration <= 0 || t.LongDuration <= 0 {
		return fmt.Errorf("banner durations must be positive: short=%s long=%s", t.ShortDuration, t.LongDuration)
	}
	if t.ExitBuffer < 0 {
		return fmt.Errorf("exit buffer must not be negative: %s", t.ExitBuffer)
	}
	if t.ProbeInterval <= 0 {
		return fmt.Errorf("probe interval must be positive: %s", t.ProbeInterval)
	}
	return nil
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			if err := v.BindEnv(key); err != nil {
				return fmt.Errorf("bind env %s: %w", key, err)
			}
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && val.Field(i).IsZero() {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}
