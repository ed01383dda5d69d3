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
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/valpere/vaani/internal/audiofile"
	"github.com/valpere/vaani/internal/config"
	"github.com/valpere/vaani/internal/detector"
	"github.com/valpere/vaani/internal/orchestrator"
	"github.com/valpere/vaani/internal/speech"
	"github.com/valpere/vaani/internal/textsource"
	"github.com/valpere/vaani/internal/translator"
	"github.com/valpere/vaani/internal/validator"
)

var (
	speakText     string
	speakInput    string
	translateFrom string
	useLexicon    bool
	noCache       bool
	quiet         bool
)

var speakCmd = &cobra.Command{
	Use:   "speak",
	Short: "Synthesize speech from text and save it to a file",
	Long: `Send text to the Sarvam text-to-speech API and save the decoded
audio to a local file.

Text comes from --text or from --input (Markdown files are reduced to their
readable text). Use --language auto to detect the language of the text.

Optional steps:
  --translate-from  translate the text with Google Translate first
  --lexicon         apply pronunciation lexicon entries (needs --db)
  --db              cache audio and record history in SQLite

Example:
  vaani speak -x "पहले कचरे को अलग किया जाना चाहिए" -o speech.wav`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd, speakFlagKeys)
		if err != nil {
			return err
		}

		if err := checkSpeakInputs(speakInput, settings.Output, settings.Language, translateFrom); err != nil {
			return err
		}

		text, err := textsource.Resolve(speakText, speakInput)
		if err != nil {
			return err
		}

		det := detector.New()
		if settings.Language == "auto" {
			code, err := det.LanguageCode(text)
			if err != nil {
				return err
			}
			settings.Language = code
			logger.Info("detected language", zap.String("language", code))
		}

		if err := settings.Validate(); err != nil {
			return err
		}
		warnUnknownSpeaker(settings)

		svc := speech.NewSarvamService(settings.APIKey, settings.Endpoint, logger)
		if !quiet {
			svc.SetProgress(os.Stderr)
		}

		orch := orchestrator.New(svc, audiofile.NewFileStore(), orchestrator.OrchestratorConfig{
			Service: speech.ServiceConfig{Timeout: settings.Timeout},
			Translation: translator.ServiceConfig{
				Credentials: settings.GoogleCredentials,
				ProjectID:   settings.GoogleProject,
				Timeout:     settings.Timeout,
			},
			UseCache:   !noCache,
			UseLexicon: useLexicon,
		}, logger).WithValidator(validator.NewWithDetector(det))

		if translateFrom != "" {
			orch.WithTranslator(translator.NewGoogleService(logger))
		}

		if settings.DBPath != "" {
			db, err := openStore()
			if err != nil {
				return err
			}
			defer db.Close()
			orch.WithMemory(db)
		} else if useLexicon {
			return fmt.Errorf("--lexicon needs a database: use --db or VAANI_DB")
		}

		outcome, err := orch.Execute(cmd.Context(), orchestrator.Job{
			Text:          text,
			TranslateFrom: translateFrom,
			OutputPath:    settings.Output,
			LanguageCode:  settings.Language,
			Speaker:       settings.Speaker,
			Model:         settings.Model,
			Codec:         settings.Codec,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Audio saved as %s (%s)\n", outcome.OutputPath, describeAudio(outcome))
		return nil
	},
}

func describeAudio(outcome *orchestrator.Outcome) string {
	desc := humanize.Bytes(uint64(outcome.Info.Bytes))
	if outcome.Info.Duration > 0 {
		desc += ", " + outcome.Info.Duration.Round(10*time.Millisecond).String()
	}
	if outcome.CacheHit {
		desc += ", from cache"
	}
	return desc
}

func warnUnknownSpeaker(settings *config.Settings) {
	speakers := speech.Speakers(settings.Model)
	if len(speakers) == 0 {
		return
	}
	for _, s := range speakers {
		if s == settings.Speaker {
			return
		}
	}
	logger.Warn("speaker is not known for this model",
		zap.String("speaker", settings.Speaker),
		zap.String("model", settings.Model))
}

// checkSpeakInputs rejects flag combinations that cannot produce a sensible run.
// Detection with --language auto sees the text before translation, so it
// would pick the source language as the target.
func checkSpeakInputs(input, output, language, from string) error {
	if input != "" && samePath(input, output) {
		return fmt.Errorf("input file and output file cannot be the same")
	}
	if language == "auto" && from != "" {
		return fmt.Errorf("--language auto cannot be combined with --translate-from: name the target language")
	}
	return nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return absA == absB
}

func init() {
	rootCmd.AddCommand(speakCmd)

	speakCmd.Flags().StringVarP(&speakText, "text", "x", "", "Text to synthesize")
	speakCmd.Flags().StringVarP(&speakInput, "input", "i", "", "File with the text to synthesize (.md files are read as Markdown)")
	speakCmd.Flags().StringP("output", "o", config.DefaultOutput, "Output audio file")
	speakCmd.Flags().StringP("language", "l", config.DefaultLanguage, `Target language code (e.g. hi-IN) or "auto"`)
	speakCmd.Flags().String("speaker", config.DefaultSpeaker, "Voice to use")
	speakCmd.Flags().String("model", config.DefaultModel, "Synthesis model")
	speakCmd.Flags().String("codec", config.DefaultCodec, "Output audio codec (wav, mp3, ...)")
	speakCmd.Flags().String("api-key", "", "Sarvam API subscription key")
	speakCmd.Flags().String("endpoint", config.DefaultEndpoint, "Text-to-speech endpoint URL")
	speakCmd.Flags().Duration("timeout", config.DefaultTimeout, "Request timeout")

	speakCmd.Flags().StringVar(&translateFrom, "translate-from", "", "Translate from this language before synthesis (e.g. en)")
	speakCmd.Flags().String("credentials", "", "Path to Google credentials JSON")
	speakCmd.Flags().String("project", "", "Google Cloud project ID")

	speakCmd.Flags().BoolVar(&useLexicon, "lexicon", false, "Apply pronunciation lexicon entries")
	speakCmd.Flags().BoolVar(&noCache, "no-cache", false, "Do not read or write the audio cache")
	speakCmd.Flags().BoolVar(&quiet, "quiet", false, "Hide the download progress bar")
}
