package main

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// Configuration via environment variables with github.com/kelseyhightower/envconfig.
type Configuration struct {

	// Iterations is the number of sort and checksum passes per round
	Iterations int `split_words:"true" default:"100" validate:"min=1"`

	// Size is the number of integers in the generated dataset
	Size int `split_words:"true" default:"4096" validate:"min=1"`

	// Rounds is how many independently traced rounds to run
	Rounds int `split_words:"true" default:"1" validate:"min=1"`

	// Seed for the pseudo-random dataset
	Seed int64 `split_words:"true" default:"1"`

	// Metrics enables the Prometheus exporter on HttpListen after all rounds
	Metrics bool `split_words:"true" default:"false"`

	// HttpListen is the TCP port to listen on for the metrics endpoint
	HttpListen string `split_words:"true" default:":4080" validate:"required_if=Metrics true"`

	// Debug also registers the pprof handlers
	Debug bool `split_words:"true" default:"false"`
}

// Use a single Validator instance to cache struct info
var validate = validator.New()

// GetConfiguration reads and validates the configuration from the environment.
func GetConfiguration() (conf Configuration, err error) {
	if err = envconfig.Process(envconfigPrefix, &conf); err != nil {
		return conf, fmt.Errorf("failed to read configuration: %w", err)
	}
	if err = validate.Struct(&conf); err != nil {
		return conf, fmt.Errorf("invalid configuration: %w", err)
	}
	return conf, nil
}
