package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"

	cheapruler "github.com/apendleton/cheap-ruler"
	"github.com/apendleton/cheap-ruler/internal/logging"
)

// EnvPrefix prefixes every environment override: CHEAPRULER_RULER_UNITS → ruler.units.
const EnvPrefix = "CHEAPRULER"

// Config holds all command line tool configuration.
type Config struct {
	Ruler  RulerConfig  `mapstructure:"ruler"`
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
}

// RulerConfig selects the reference latitude and units of the ruler.
type RulerConfig struct {
	Latitude float64 `mapstructure:"latitude"`
	Units    string  `mapstructure:"units"`
}

// Build creates the ruler described by the configuration.
func (r RulerConfig) Build() (cheapruler.Ruler, error) {
	u, err := cheapruler.ParseUnit(r.Units)
	if err != nil {
		return cheapruler.Ruler{}, err
	}
	return cheapruler.New(r.Latitude, u)
}

// LogConfig selects the slog level and handler format.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig controls how numbers are printed.
type OutputConfig struct {
	Precision int `mapstructure:"precision"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("ruler.latitude", 0.0)
	v.SetDefault("ruler.units", cheapruler.Kilometers.String())
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("output.precision", 6)
}

// Load reads configuration from file and environment variables into v.
// An empty file searches for cheapruler.yaml in the working directory
// and $HOME/.config/cheapruler; a missing file is not an error there.
// Flags bound to v before calling Load take precedence over both.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		v.SetConfigName("cheapruler")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/cheapruler")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	var errs []string

	lat := c.Ruler.Latitude
	if math.IsNaN(lat) || lat <= -90 || lat >= 90 {
		errs = append(errs, fmt.Sprintf("ruler.latitude must be within (-90, 90), got %v", lat))
	}
	if _, err := cheapruler.ParseUnit(c.Ruler.Units); err != nil {
		errs = append(errs, fmt.Sprintf("ruler.units: %v", err))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Sprintf("log.level: %v", err))
	}
	if f := strings.ToLower(c.Log.Format); f != "json" && f != "text" {
		errs = append(errs, fmt.Sprintf("log.format must be json or text, got %q", c.Log.Format))
	}
	if c.Output.Precision < 0 || c.Output.Precision > 17 {
		errs = append(errs, fmt.Sprintf("output.precision must be 0-17, got %d", c.Output.Precision))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
