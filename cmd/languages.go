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
	"strings"

	"github.com/spf13/cobra"

	"github.com/valpere/vaani/internal/speech"
)

var languagesModel string

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported language codes and speakers",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Languages:")
		for _, code := range speech.LanguageCodes {
			fmt.Printf("  %s\n", code)
		}

		speakers := speech.Speakers(languagesModel)
		if len(speakers) == 0 {
			return fmt.Errorf("unknown model %q (known: %s)", languagesModel, strings.Join(speech.Models(), ", "))
		}
		fmt.Printf("Speakers (%s):\n", languagesModel)
		for _, s := range speakers {
			fmt.Printf("  %s\n", s)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)

	languagesCmd.Flags().StringVar(&languagesModel, "model", speech.Models()[0], "Model whose speakers are listed")
}
