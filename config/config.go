// Copyright 2026 Simone Medas.
// This software is released under an MIT/X11 open source license.

// Package config holds the client configuration for the Azure DevOps
// test-management client: where the service lives, which organization
// and project to talk to, and the personal access token to
// authenticate with.  Configuration is loaded once at startup and
// never changes afterward; every request built later uses these
// values verbatim.
package config

import (
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v2"
)

// DefaultProtocol is used when a configuration does not name one.
const DefaultProtocol = "https"

// DefaultAPIVersion is the api-version query value used by endpoints
// that do not pin their own.
const DefaultAPIVersion = "6.0"

// Config carries everything needed to address and authenticate
// against the service.  All fields except PAT become URL-template
// substitution values.
type Config struct {
	// Protocol is the URL scheme, normally "https".  Overriding
	// it exists to point test code at plain-HTTP endpoints.
	Protocol string

	// APIVersion is the default api-version query value.
	APIVersion string `mapstructure:"api_version" yaml:"api_version"`

	// Instance is the service host, e.g. "dev.azure.com".
	Instance string

	// Organization is the organization name.  May contain spaces.
	Organization string

	// PAT is the personal access token, sent as the Basic-auth
	// password with an empty username.
	PAT string `mapstructure:"pat" yaml:"pat"`

	// ProjectName is the project name.  May contain spaces.
	ProjectName string `mapstructure:"project_name" yaml:"project_name"`

	// Team is the team name.  May contain spaces.
	Team string
}

// WithDefaults returns a copy of c with empty protocol and API
// version replaced by their defaults.
func (c Config) WithDefaults() Config {
	if c.Protocol == "" {
		c.Protocol = DefaultProtocol
	}
	if c.APIVersion == "" {
		c.APIVersion = DefaultAPIVersion
	}
	return c
}

// FromMap decodes a generic configuration map, as produced by a YAML
// or JSON loader, into a Config with defaults applied.
func FromMap(data map[string]interface{}) (Config, error) {
	var cfg Config
	decoderConfig := mapstructure.DecoderConfig{
		Result: &cfg,
	}
	decoder, err := mapstructure.NewDecoder(&decoderConfig)
	if err == nil {
		err = decoder.Decode(data)
	}
	if err != nil {
		return Config{}, err
	}
	return cfg.WithDefaults(), nil
}

// Load reads a YAML configuration file.
func Load(filename string) (Config, error) {
	var data map[string]interface{}
	bytes, err := os.ReadFile(filename)
	if err == nil {
		err = yaml.Unmarshal(bytes, &data)
	}
	if err != nil {
		return Config{}, err
	}
	return FromMap(data)
}
