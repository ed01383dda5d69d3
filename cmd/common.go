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

	"github.com/spf13/cobra"

	"github.com/valpere/vaani/internal/config"
	"github.com/valpere/vaani/internal/store"
)

// speakFlagKeys maps speak flags onto their settings keys.
var speakFlagKeys = map[string]string{
	"api-key":     "api_key",
	"endpoint":    "endpoint",
	"language":    "language",
	"speaker":     "speaker",
	"model":       "model",
	"codec":       "codec",
	"output":      "output",
	"timeout":     "timeout",
	"credentials": "google_credentials",
	"project":     "google_project",
}

// loadSettings binds the command's flags and resolves settings with flag >
// env > config file > default precedence.
func loadSettings(cmd *cobra.Command, keys map[string]string) (*config.Settings, error) {
	for flag, key := range keys {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, fmt.Errorf("failed to bind --%s: %w", flag, err)
		}
	}
	return config.Load(v)
}

// openStore opens the database named by --db, VAANI_DB or db in the config file.
func openStore() (*store.Store, error) {
	path := v.GetString("db")
	if path == "" {
		return nil, fmt.Errorf("no database configured: use --db or VAANI_DB")
	}
	db, err := store.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}
