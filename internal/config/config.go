package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/objectops/s3-metadata-recorder/internal/model"
)

// Config holds the environment-driven settings of the recorder. The hosting
// runtime supplies credentials; only the table name and an optional region
// override live here.
type Config struct {
	TableName string `envconfig:"METADATA_TABLE"`
	AWSRegion string `envconfig:"AWS_REGION"`
}

// Load reads the configuration from the process environment. An unset or
// empty METADATA_TABLE falls back to model.DefaultTableName.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if cfg.TableName == "" {
		cfg.TableName = model.DefaultTableName
	}
	return &cfg, nil
}
