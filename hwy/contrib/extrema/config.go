// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package extrema

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables read by Config.ApplyEnv.
const (
	EnvWorkers      = "HWY_EXTREMA_WORKERS"
	EnvDataParallel = "HWY_EXTREMA_DATA_PARALLEL"
	EnvBatchSize    = "HWY_EXTREMA_BATCH_SIZE"
	EnvLaneWidth    = "HWY_EXTREMA_LANE_WIDTH"
)

// Config is the file form of the parallel reduction options.
//
//	workers: 8
//	data_parallel: true
//	batch_size: 65536
//	lane_width: "256"
type Config struct {
	Workers      int       `yaml:"workers"`
	DataParallel bool      `yaml:"data_parallel"`
	BatchSize    int       `yaml:"batch_size"`
	LaneWidth    LaneWidth `yaml:"lane_width"`
}

// DefaultConfig returns the configuration equivalent to passing no options.
func DefaultConfig() Config {
	return Config{LaneWidth: LanesAuto}
}

// LoadConfig reads a YAML config file. Keys absent from the file keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("extrema: reading config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("extrema: config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes a YAML document into a Config.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides c with the HWY_EXTREMA_* environment variables that are
// set.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvWorkers); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("extrema: %s: %w", EnvWorkers, err)
		}
		c.Workers = n
	}
	if v, ok := os.LookupEnv(EnvDataParallel); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("extrema: %s: %w", EnvDataParallel, err)
		}
		c.DataParallel = b
	}
	if v, ok := os.LookupEnv(EnvBatchSize); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("extrema: %s: %w", EnvBatchSize, err)
		}
		c.BatchSize = n
	}
	if v, ok := os.LookupEnv(EnvLaneWidth); ok {
		w, err := ParseLaneWidth(v)
		if err != nil {
			return fmt.Errorf("extrema: %s: %w", EnvLaneWidth, err)
		}
		c.LaneWidth = w
	}
	return c.Validate()
}

// Validate reports values no option accepts.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("extrema: workers must be >= 0, got %d", c.Workers)
	}
	if c.BatchSize < 0 {
		return fmt.Errorf("extrema: batch_size must be >= 0, got %d", c.BatchSize)
	}
	return nil
}

// Options converts c to reduction options.
func (c Config) Options() []Option {
	return []Option{
		WithWorkers(c.Workers),
		WithDataParallel(c.DataParallel),
		WithBatchSize(c.BatchSize),
		WithLaneWidth(c.LaneWidth),
	}
}
