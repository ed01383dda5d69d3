/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/valpere/vaani/internal/config"
	"github.com/valpere/vaani/internal/logging"
)

var version = "0.1.0"

var (
	configFile string
	envFile    string
	verbose    bool
	dbPath     string

	v      *viper.Viper
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "vaani",
	Short: "CLI text-to-speech for Indian languages",
	Long: `A CLI application that turns text into speech with the Sarvam
text-to-speech API and saves the audio to a local file.

The API key is read from --api-key, SARVAM_API_KEY / VAANI_API_KEY
(a .env file is loaded first) or api_key in the config file.

Use "vaani speak --help" for synthesis options.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		v, err = config.New(configFile, envFile)
		if err != nil {
			return err
		}
		if err := v.BindPFlag("db", cmd.Root().PersistentFlags().Lookup("db")); err != nil {
			return err
		}
		logger = logging.New(verbose)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (yaml, toml or json)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Dotenv file loaded before reading the environment")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database for cache, lexicon and history")
}
