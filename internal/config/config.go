// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"

	"github.com/iwvelando/property-proforma/internal/proforma"
	"github.com/spf13/viper"
)

// Property describes the basic attributes of a property under analysis.
// Created once from user submission and never mutated; every synthetic
// assumption derives from these fields.
type Property struct {
	Address   string
	Bedrooms  int
	Bathrooms float64 // half steps allowed, e.g. 2.5
	YearBuilt int
}

// Configuration holds all configuration for property-proforma.
type Configuration struct {
	Property    *Property
	Scenarios   []string
	Assumptions *proforma.AssumptionSet
	Profile     *proforma.PersonalProfile
	Logging     LoggingConfig `yaml:"logging,omitempty"`
	Output      OutputConfig  `yaml:"output,omitempty"`
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

// Scenario list with defaults applied: when the config names no scenarios,
// all three strategies are computed.
func (conf *Configuration) ScenarioList() []proforma.Scenario {
	if len(conf.Scenarios) == 0 {
		return []proforma.Scenario{proforma.ScenarioRental, proforma.ScenarioAirbnb, proforma.ScenarioOwner}
	}
	scenarios := make([]proforma.Scenario, 0, len(conf.Scenarios))
	for _, name := range conf.Scenarios {
		scenarios = append(scenarios, proforma.Scenario(name))
	}
	return scenarios
}
