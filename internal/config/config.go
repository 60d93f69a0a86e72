package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the on-disk and environment configuration for inputstream.
type Config struct {
	Seat    string   `mapstructure:"seat"`
	Backend string   `mapstructure:"backend"`
	Devices []string `mapstructure:"devices"`
	Grab    bool     `mapstructure:"grab"`

	Format   string `mapstructure:"format"`
	ShowTime bool   `mapstructure:"show_time"`
	// Screen is "WIDTHxHEIGHT" for screen-mapped coordinates, empty for none.
	Screen string `mapstructure:"screen"`

	LogLevel      string `mapstructure:"log_level"`
	LogFormat     string `mapstructure:"log_format"`
	LogFile       string `mapstructure:"log_file"`
	LogMaxSizeMB  int    `mapstructure:"log_max_size_mb"`
	LogMaxBackups int    `mapstructure:"log_max_backups"`

	Device DeviceConfig `mapstructure:"device"`
}

// DeviceConfig holds the per-device knobs applied as devices are added.
// Empty strings leave the device default alone.
type DeviceConfig struct {
	Tapping            string   `mapstructure:"tapping"`
	TapButtonMap       string   `mapstructure:"tap_button_map"`
	Drag               string   `mapstructure:"drag"`
	DragLock           string   `mapstructure:"drag_lock"`
	NaturalScroll      string   `mapstructure:"natural_scroll"`
	LeftHanded         string   `mapstructure:"left_handed"`
	MiddleButton       string   `mapstructure:"middle_button"`
	DisableWhileTyping string   `mapstructure:"disable_while_typing"`
	ClickMethod        string   `mapstructure:"click_method"`
	ScrollMethod       string   `mapstructure:"scroll_method"`
	ScrollButton       uint32   `mapstructure:"scroll_button"`
	Speed              *float64 `mapstructure:"speed"`
	AccelProfile       string   `mapstructure:"accel_profile"`
}

func Default() *Config {
	return &Config{
		Seat:          "seat0",
		Backend:       "udev",
		Format:        "text",
		LogLevel:      "info",
		LogFormat:     "text",
		LogMaxSizeMB:  10,
		LogMaxBackups: 3,
	}
}

// Load reads cfgFile, or inputstream.yaml from the config directory or the
// working directory when cfgFile is empty. A missing default file is not an
// error. INPUTSTREAM_* environment variables override file values.
func Load(cfgFile string) (*Config, error) {
	cfg := Default()
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("inputstream")
		v.SetConfigType("yaml")
		v.AddConfigPath(configDir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("INPUTSTREAM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, cfg)
	// Speed has no default (nil means leave the device alone), so it is
	// bound explicitly for INPUTSTREAM_DEVICE_SPEED to be seen.
	if err := v.BindEnv("device.speed"); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults registers every key that has a default so AutomaticEnv can
// resolve it during Unmarshal.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("seat", cfg.Seat)
	v.SetDefault("backend", cfg.Backend)
	v.SetDefault("devices", cfg.Devices)
	v.SetDefault("grab", cfg.Grab)
	v.SetDefault("format", cfg.Format)
	v.SetDefault("show_time", cfg.ShowTime)
	v.SetDefault("screen", cfg.Screen)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("log_format", cfg.LogFormat)
	v.SetDefault("log_file", cfg.LogFile)
	v.SetDefault("log_max_size_mb", cfg.LogMaxSizeMB)
	v.SetDefault("log_max_backups", cfg.LogMaxBackups)

	d := cfg.Device
	v.SetDefault("device.tapping", d.Tapping)
	v.SetDefault("device.tap_button_map", d.TapButtonMap)
	v.SetDefault("device.drag", d.Drag)
	v.SetDefault("device.drag_lock", d.DragLock)
	v.SetDefault("device.natural_scroll", d.NaturalScroll)
	v.SetDefault("device.left_handed", d.LeftHanded)
	v.SetDefault("device.middle_button", d.MiddleButton)
	v.SetDefault("device.disable_while_typing", d.DisableWhileTyping)
	v.SetDefault("device.click_method", d.ClickMethod)
	v.SetDefault("device.scroll_method", d.ScrollMethod)
	v.SetDefault("device.scroll_button", d.ScrollButton)
	v.SetDefault("device.accel_profile", d.AccelProfile)
}

// SaveTo writes cfg as YAML. An empty cfgFile writes inputstream.yaml in the
// config directory.
func SaveTo(cfg *Config, cfgFile string) (string, error) {
	v := viper.New()
	v.Set("seat", cfg.Seat)
	v.Set("backend", cfg.Backend)
	v.Set("devices", cfg.Devices)
	v.Set("grab", cfg.Grab)
	v.Set("format", cfg.Format)
	v.Set("show_time", cfg.ShowTime)
	v.Set("screen", cfg.Screen)
	v.Set("log_level", cfg.LogLevel)
	v.Set("log_format", cfg.LogFormat)
	v.Set("log_file", cfg.LogFile)
	v.Set("log_max_size_mb", cfg.LogMaxSizeMB)
	v.Set("log_max_backups", cfg.LogMaxBackups)

	d := cfg.Device
	v.Set("device.tapping", d.Tapping)
	v.Set("device.tap_button_map", d.TapButtonMap)
	v.Set("device.drag", d.Drag)
	v.Set("device.drag_lock", d.DragLock)
	v.Set("device.natural_scroll", d.NaturalScroll)
	v.Set("device.left_handed", d.LeftHanded)
	v.Set("device.middle_button", d.MiddleButton)
	v.Set("device.disable_while_typing", d.DisableWhileTyping)
	v.Set("device.click_method", d.ClickMethod)
	v.Set("device.scroll_method", d.ScrollMethod)
	v.Set("device.scroll_button", d.ScrollButton)
	if d.Speed != nil {
		v.Set("device.speed", *d.Speed)
	}
	v.Set("device.accel_profile", d.AccelProfile)

	cfgPath := cfgFile
	if cfgPath == "" {
		cfgPath = filepath.Join(configDir(), "inputstream.yaml")
	}
	if dir := filepath.Dir(cfgPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	if err := v.WriteConfigAs(cfgPath); err != nil {
		return "", err
	}
	return cfgPath, nil
}

func configDir() string {
	if dir := os.Getenv("INPUTSTREAM_CONFIG_DIR"); dir != "" {
		return dir
	}
	return "/etc/inputstream"
}
