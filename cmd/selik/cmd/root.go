// Package cmd contains all CLI commands for the Selik trainer.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/louttit/selik/internal/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "selik",
	Short: "Selik vocabulary trainer - spelling quizzes and file analysis",
	Long: `selik is a CLI tool for memorizing Selik constructed-language
vocabulary.

The quiz command drills word spellings from numbered vocabulary lists,
remembers how often each word was missed across sessions, and asks the
words you miss most first. The analyze command checks vocabulary files
for duplicate or undefined entries.

Vocabulary files are plain text with one entry per line:

  1. ora pelan 走 v.
  2. mira 看見 v.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default is ./selik.yaml)")
	rootCmd.PersistentFlags().String("memory", "", "memory file (default is ./.quiz_memory.json)")

	viper.BindPFlag("memory_file", rootCmd.PersistentFlags().Lookup("memory"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_file", cfgFile)
	} else {
		viper.Set("config_file", config.DefaultFile)
	}

	viper.SetEnvPrefix("SELIK")
	viper.AutomaticEnv()
}

// loadSettings reads the YAML settings file and applies flag and env
// overrides on top.
func loadSettings() (*config.Config, error) {
	cfg, err := config.Load(viper.GetString("config_file"))
	if err != nil {
		return nil, err
	}
	if path := viper.GetString("memory_file"); path != "" {
		cfg.MemoryFile = path
	}
	return cfg, nil
}
