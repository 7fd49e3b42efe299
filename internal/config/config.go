// Package config defines the data structures related to configuration and
// includes functions for loading, parsing, and validating the config.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/iwvelando/hybrid-forecast/pkg/constants"
	"github.com/iwvelando/hybrid-forecast/pkg/portfolio"
	"github.com/spf13/viper"
)

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = constants.DateTimeLayout

// Configuration holds all configuration for hybrid-forecast.
type Configuration struct {
	Inputs    ProjectionInputs
	Portfolio Portfolio
	StartDate string        `yaml:"startDate,omitempty"`
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// ProjectionInputs holds the parameters of one projection request. All rate
// fields are annual percentages except CarryFee, which is the percentage of
// profit taken as carry.
type ProjectionInputs struct {
	Investment     float64
	CurrentSpot    float64
	SpxPriceReturn float64
	SpxDivYield    float64
	CreditYield    float64
	Volatility     float64
	MgmtFee        float64
	CarryFee       float64
	RiskFreeRate   float64
	Years          int
}

// Portfolio describes the reference portfolio at reference scale.
type Portfolio struct {
	MasterCostBasis float64
	Positions       []Position
}

// Position is one reference portfolio row. Strike, Quantity, and Expiration
// apply to option rows only.
type Position struct {
	Kind         string
	CostBasis    float64
	CurrentValue float64
	Strike       float64
	Quantity     float64
	Expiration   string
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// Validate performs boundary validation of the projection inputs. Every
// failure here aborts the projection before any computation runs.
func (in ProjectionInputs) Validate() error {
	if in.Investment <= 0 {
		return fmt.Errorf("investment must be positive, got %f", in.Investment)
	}
	if in.CurrentSpot <= 0 {
		return fmt.Errorf("currentSpot must be positive, got %f", in.CurrentSpot)
	}
	if in.Volatility < 0 {
		return fmt.Errorf("volatility must not be negative, got %f", in.Volatility)
	}
	if in.CarryFee < 0 || in.CarryFee > constants.PercentageMultiplier {
		return fmt.Errorf("carryFee must be between 0 and 100, got %f", in.CarryFee)
	}
	if in.Years <= 0 {
		return fmt.Errorf("years must be positive, got %d", in.Years)
	}
	return nil
}

// Validate checks the full configuration: projection inputs, the reference
// portfolio, and the optional start date.
func (c *Configuration) Validate() error {
	if err := c.Inputs.Validate(); err != nil {
		return err
	}

	if c.Portfolio.MasterCostBasis <= 0 {
		return fmt.Errorf("masterCostBasis must be positive, got %f", c.Portfolio.MasterCostBasis)
	}
	if len(c.Portfolio.Positions) == 0 {
		return fmt.Errorf("portfolio must contain at least one position")
	}
	for i, pos := range c.Portfolio.Positions {
		kind, err := parseKind(pos.Kind)
		if err != nil {
			return fmt.Errorf("position %d: %w", i, err)
		}
		if kind == portfolio.Option && pos.Strike <= 0 {
			return fmt.Errorf("position %d: option strike must be positive, got %f", i, pos.Strike)
		}
	}

	if c.StartDate != "" {
		if _, err := time.Parse(DateTimeLayout, c.StartDate); err != nil {
			return fmt.Errorf("invalid startDate %q: %w", c.StartDate, err)
		}
	}

	return nil
}

// ReferencePortfolio converts the configured portfolio rows into the engine's
// typed reference portfolio.
func (c *Configuration) ReferencePortfolio() (portfolio.Portfolio, error) {
	ref := portfolio.Portfolio{MasterCostBasis: c.Portfolio.MasterCostBasis}
	for i, pos := range c.Portfolio.Positions {
		kind, err := parseKind(pos.Kind)
		if err != nil {
			return portfolio.Portfolio{}, fmt.Errorf("position %d: %w", i, err)
		}
		ref.Positions = append(ref.Positions, portfolio.Position{
			Kind:         kind,
			CostBasis:    pos.CostBasis,
			CurrentValue: pos.CurrentValue,
			Strike:       pos.Strike,
			Quantity:     pos.Quantity,
			Expiration:   pos.Expiration,
		})
	}
	return ref, nil
}

// Start returns the configured start date, or fallback when unset.
func (c *Configuration) Start(fallback time.Time) time.Time {
	if c.StartDate == "" {
		return fallback
	}
	t, err := time.Parse(DateTimeLayout, c.StartDate)
	if err != nil {
		return fallback
	}
	return t
}

func parseKind(kind string) (portfolio.PositionKind, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case string(portfolio.Credit):
		return portfolio.Credit, nil
	case string(portfolio.Option):
		return portfolio.Option, nil
	default:
		return "", fmt.Errorf("unknown position kind %q", kind)
	}
}
