// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// AlignerConfig names the external alignment binaries on the PATH.
type AlignerConfig struct {
	// Tool is the aligner to shell out to: mafft, muscle or clustalo
	Tool string `mapstructure:"tool"`
}

// Config is the root-level settings struct: a mix of settings available
// in settings.yaml and those bound from the command line.
type Config struct {
	// OutFormat is the default serialization format when the output
	// format flag is unset
	OutFormat string `mapstructure:"out-format"`

	// TrimThreshold is the gap-fraction cutoff used by '--trim default'
	TrimThreshold float64 `mapstructure:"trim-threshold"`

	// Aligner settings for '--align'
	Aligner AlignerConfig `mapstructure:"aligner"`
}

// New returns a Config populated by Viper (settings.yaml and/or bound
// command line flags).
func New() *Config {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}
	return &c
}

// SetDefaults registers the fallback settings with viper. Called once
// from the root command's init.
func SetDefaults() {
	viper.SetDefault("out-format", "")
	viper.SetDefault("trim-threshold", 0.7)
	viper.SetDefault("aligner.tool", "mafft")
}
