// Package cmd is for command line interactions with the buddy application
package cmd

import (
	"log"

	"github.com/etiology/BuddySuite/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "buddy",
	Short: `See your sequence files. Be your sequence files.
Convert, transform and interrogate sequences and alignments in ~10 flat-text formats`,
	Version: "1.0.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// set flags
func init() {
	rootCmd.PersistentFlags().StringP("in", "i", "", "input file (defaults to the first argument, then stdin)")
	rootCmd.PersistentFlags().StringP("out", "o", "", "output file (defaults to stdout)")
	rootCmd.PersistentFlags().StringP("format", "f", "", "input format, skipping detection (ex: fasta, gb, phylipr)")
	rootCmd.PersistentFlags().String("out-format", "", "output format (defaults to the input format)")

	viper.BindPFlag("out-format", rootCmd.PersistentFlags().Lookup("out-format"))
	viper.SetConfigName("settings")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // missing settings.yaml is fine, defaults apply

	config.SetDefaults()
}
