package dump

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type config struct {
	Output         string // report destination, empty means stdout
	PayloadPreview int    // raw payload bytes shown per tag (default 16)

	Log log
}

type log struct {
	Path         string // empty means plain stderr logging
	Level        string
	RotationTime time.Duration
	Age          int
}

func (d *Dumper) loadConfig(configPath string) error {
	viper.SetConfigFile(configPath)

	if err := viper.ReadInConfig(); err != nil {
		return errors.Wrap(err, "read in config")
	}

	if d.config == nil {
		d.config = new(config)
	}

	if err := viper.Unmarshal(d.config); err != nil {
		return errors.Wrap(err, "unmarshal config")
	}

	return nil
}
