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
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Manage the pronunciation lexicon",
	Long: `Add, list, and delete pronunciation lexicon entries.

A lexicon entry replaces a term with the way it should be spoken, e.g. an
abbreviation spelled out in Devanagari. Entries are applied per language
when "vaani speak --lexicon" is used.`,
}

var lexiconListLang string

var lexiconListCmd = &cobra.Command{
	Use:   "list",
	Short: "List lexicon entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		entries, err := db.ListLexiconTerms(context.Background(), lexiconListLang)
		if err != nil {
			return fmt.Errorf("failed to list lexicon: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("Lexicon is empty.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tLANG\tTERM\tSPOKEN")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.ID, e.LanguageCode, e.Term, e.Spoken)
		}
		return w.Flush()
	},
}

var lexiconAddLang string

var lexiconAddCmd = &cobra.Command{
	Use:   "add <term> <spoken>",
	Short: "Add or update a lexicon entry",
	Long: `Add a lexicon entry mapping a term to its spoken form.

Example:
  vaani lexicon add "GST" "जी एस टी" -l hi-IN --db vaani.db`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if lexiconAddLang == "" {
			return fmt.Errorf("--language flag is required")
		}

		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.AddLexiconTerm(context.Background(), lexiconAddLang, args[0], args[1]); err != nil {
			return fmt.Errorf("failed to add lexicon entry: %w", err)
		}
		fmt.Printf("Added: [%s] %q → %q\n", lexiconAddLang, args[0], args[1])
		return nil
	},
}

var lexiconDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a lexicon entry by ID",
	Long: `Delete a lexicon entry by its ID (shown in "vaani lexicon list").

Example:
  vaani lexicon delete lx_1234567890123456789`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.DeleteLexiconTerm(context.Background(), args[0]); err != nil {
			return fmt.Errorf("failed to delete lexicon entry: %w", err)
		}
		fmt.Printf("Deleted lexicon entry: %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lexiconCmd)

	lexiconListCmd.Flags().StringVarP(&lexiconListLang, "language", "l", "", "Filter by language code (e.g. hi-IN)")
	lexiconAddCmd.Flags().StringVarP(&lexiconAddLang, "language", "l", "", "Language code (e.g. hi-IN)")

	lexiconCmd.AddCommand(lexiconListCmd)
	lexiconCmd.AddCommand(lexiconAddCmd)
	lexiconCmd.AddCommand(lexiconDeleteCmd)
}
