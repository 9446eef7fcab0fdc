// Package config loads application configuration from file and
// environment and bootstraps the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Paths  PathsConfig  `yaml:"paths" mapstructure:"paths"`
	Map    MapConfig    `yaml:"map" mapstructure:"map"`
	Render RenderConfig `yaml:"render" mapstructure:"render"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// PathsConfig names every input and output location; no process-wide
// working-directory state, all I/O takes explicit paths.
type PathsConfig struct {
	Shapefile   string `yaml:"shapefile" mapstructure:"shapefile"`
	Table       string `yaml:"table" mapstructure:"table"`
	OutDir      string `yaml:"out_dir" mapstructure:"out_dir"`
	FetchDir    string `yaml:"fetch_dir" mapstructure:"fetch_dir"`
	BoundaryURL string `yaml:"boundary_url" mapstructure:"boundary_url"`
}

// MapConfig parametrizes the projection and the AK/HI relocation.
type MapConfig struct {
	OriginLat     float64 `yaml:"origin_lat" mapstructure:"origin_lat"`
	OriginLon     float64 `yaml:"origin_lon" mapstructure:"origin_lon"`
	EarthRadius   float64 `yaml:"earth_radius" mapstructure:"earth_radius"`
	AlaskaRotate  float64 `yaml:"alaska_rotate" mapstructure:"alaska_rotate"`
	AlaskaDivisor float64 `yaml:"alaska_divisor" mapstructure:"alaska_divisor"`
	AlaskaShiftX  float64 `yaml:"alaska_shift_x" mapstructure:"alaska_shift_x"`
	AlaskaShiftY  float64 `yaml:"alaska_shift_y" mapstructure:"alaska_shift_y"`
	HawaiiRotate  float64 `yaml:"hawaii_rotate" mapstructure:"hawaii_rotate"`
	HawaiiShiftX  float64 `yaml:"hawaii_shift_x" mapstructure:"hawaii_shift_x"`
	HawaiiShiftY  float64 `yaml:"hawaii_shift_y" mapstructure:"hawaii_shift_y"`
}

// RenderConfig configures image output.
type RenderConfig struct {
	SingleSize  int      `yaml:"single_size" mapstructure:"single_size"`
	GridSize    int      `yaml:"grid_size" mapstructure:"grid_size"`
	GridCols    int      `yaml:"grid_cols" mapstructure:"grid_cols"`
	FontScale   float64  `yaml:"font_scale" mapstructure:"font_scale"`
	Concurrency int      `yaml:"concurrency" mapstructure:"concurrency"`
	Variables   []string `yaml:"variables" mapstructure:"variables"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	return load(".")
}

// load reads config.yaml from the given directory, keeping directory
// resolution an explicit argument rather than process state.
func load(configDir string) (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	// Environment
	v.SetEnvPrefix("ANCESTRY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("paths.shapefile", "data/cb_2021_us_state_20m.shp")
	v.SetDefault("paths.table", "data/ancestry.csv")
	v.SetDefault("paths.out_dir", ".")
	v.SetDefault("paths.fetch_dir", "data")
	v.SetDefault("paths.boundary_url", "https://www2.census.gov/geo/tiger/GENZ2021/shp/cb_2021_us_state_20m.zip")
	v.SetDefault("map.origin_lat", 45.0)
	v.SetDefault("map.origin_lon", -100.0)
	v.SetDefault("map.earth_radius", 6370997.0)
	v.SetDefault("map.alaska_rotate", -50.0)
	v.SetDefault("map.alaska_divisor", 2.3)
	v.SetDefault("map.alaska_shift_x", -2100000.0)
	v.SetDefault("map.alaska_shift_y", -2500000.0)
	v.SetDefault("map.hawaii_rotate", -35.0)
	v.SetDefault("map.hawaii_shift_x", 5400000.0)
	v.SetDefault("map.hawaii_shift_y", -1400000.0)
	v.SetDefault("render.single_size", 1000)
	v.SetDefault("render.grid_size", 1200)
	v.SetDefault("render.grid_cols", 3)
	v.SetDefault("render.font_scale", 2.0)
	v.SetDefault("render.concurrency", 4)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
