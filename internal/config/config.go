package config

import (
	"fmt"
	"os"
	"strconv"

	"benritz/bondcalc/internal/types"

	"gopkg.in/yaml.v3"
)

var (
	ENV_CONFIG_PATH = "BONDCALC_CONFIG"
	ENV_OUTPUT      = "BONDCALC_OUTPUT"
	ENV_AWS_PROFILE = "BONDCALC_AWS_PROFILE"
	ENV_SQLITE_PATH = "BONDCALC_SQLITE_PATH"
	ENV_PAR         = "BONDCALC_PAR"
	ENV_MATURITY    = "BONDCALC_MATURITY"
	ENV_COUPON      = "BONDCALC_COUPON"
	ENV_FREQUENCY   = "BONDCALC_FREQUENCY"
)

const DefaultPath = "configs/bondcalc.yaml"

// Config holds the default bond terms and assumptions used when a flag is
// not given, and where results are stored.
type Config struct {
	Bond struct {
		Par       float64 `yaml:"par"`
		Maturity  int     `yaml:"maturity"`
		Coupon    float64 `yaml:"coupon"`
		Frequency int     `yaml:"frequency"`
	} `yaml:"bond"`
	Assumptions struct {
		RequiredYield  float64 `yaml:"required_yield"`
		BondPrice      float64 `yaml:"bond_price"`
		Reinvestment   float64 `yaml:"reinvestment_rate"`
		Horizon        float64 `yaml:"horizon"`
		ProjectedYield float64 `yaml:"projected_yield"`
	} `yaml:"assumptions"`
	Output struct {
		Destination string `yaml:"destination"`
		AWSProfile  string `yaml:"aws_profile"`
	} `yaml:"output"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if v := os.Getenv(ENV_OUTPUT); v != "" {
		cfg.Output.Destination = v
	}
	if v := os.Getenv(ENV_AWS_PROFILE); v != "" {
		cfg.Output.AWSProfile = v
	}
	if v := os.Getenv(ENV_SQLITE_PATH); v != "" {
		cfg.Database.SQLitePath = v
	}
	if err := envFloat(ENV_PAR, &cfg.Bond.Par); err != nil {
		return nil, err
	}
	if err := envInt(ENV_MATURITY, &cfg.Bond.Maturity); err != nil {
		return nil, err
	}
	if err := envFloat(ENV_COUPON, &cfg.Bond.Coupon); err != nil {
		return nil, err
	}
	if err := envInt(ENV_FREQUENCY, &cfg.Bond.Frequency); err != nil {
		return nil, err
	}

	// Defaults
	if cfg.Bond.Par == 0 {
		cfg.Bond.Par = 1000
	}
	if cfg.Bond.Maturity == 0 {
		cfg.Bond.Maturity = 20
	}
	if cfg.Bond.Coupon == 0 {
		cfg.Bond.Coupon = 8.0
	}
	if cfg.Bond.Frequency == 0 {
		cfg.Bond.Frequency = 2
	}
	if cfg.Assumptions.RequiredYield == 0 {
		cfg.Assumptions.RequiredYield = 7.0
	}
	if cfg.Assumptions.BondPrice == 0 {
		cfg.Assumptions.BondPrice = 828.40
	}
	if cfg.Assumptions.Reinvestment == 0 {
		cfg.Assumptions.Reinvestment = 6.0
	}
	if cfg.Assumptions.Horizon == 0 {
		cfg.Assumptions.Horizon = 3
	}
	if cfg.Assumptions.ProjectedYield == 0 {
		cfg.Assumptions.ProjectedYield = 7.0
	}
	if cfg.Output.AWSProfile == "" {
		cfg.Output.AWSProfile = "default"
	}

	return cfg, nil
}

func envFloat(name string, dst *float64) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	*dst = f
	return nil
}

func envInt(name string, dst *int) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	*dst = n
	return nil
}

// Terms returns the configured bond terms.
func (c *Config) Terms() *types.BondTerms {
	return types.NewBondTerms(c.Bond.Par, c.Bond.Maturity, c.Bond.Coupon, c.Bond.Frequency)
}

// Validate checks that the configured bond terms are usable.
func (c *Config) Validate() error {
	if err := c.Terms().Validate(); err != nil {
		return fmt.Errorf("bond: %w", err)
	}
	if c.Assumptions.BondPrice < 0 {
		return fmt.Errorf("assumptions.bond_price must not be negative")
	}
	return nil
}
