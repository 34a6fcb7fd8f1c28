package settings

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Default returns a configuration with working defaults for every field, so
// the demo runs without a config file.
func Default() Config {
	return Config{
		Queue: Queue{
			Capacity: 10,
			Mode:     "fifo",
			Backing:  "ring",
		},
		Demo: Demo{
			Producers:       1,
			Listeners:       2,
			ProduceMinMs:    100,
			ProduceMaxMs:    400,
			ConsumeMinMs:    200,
			ConsumeMaxMs:    800,
			ModeFlipSeconds: 0,
			RunSeconds:      0,
		},
		Logger: Logger{
			LogLevel: "info",
		},
	}
}

// Load reads the configuration from the given file (YAML), layered over
// Default and environment variables prefixed with MQDEMO_. An empty path
// skips the file and returns defaults plus environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetEnvPrefix("mqdemo")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return cfg, errors.Wrap(err, "settings: read config")
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "settings: unmarshal config")
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the struct-level validation tags.
func Validate(cfg Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return errors.Wrap(err, "settings: invalid config")
	}
	return nil
}
