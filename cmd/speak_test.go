package cmd

import (
	"testing"
	"time"

	"github.com/valpere/vaani/internal/audiofile"
	"github.com/valpere/vaani/internal/config"
	"github.com/valpere/vaani/internal/orchestrator"
)

func TestDescribeAudio(t *testing.T) {
	tests := []struct {
		name    string
		outcome orchestrator.Outcome
		want    string
	}{
		{
			name:    "size only",
			outcome: orchestrator.Outcome{Info: audiofile.Info{Bytes: 2048}},
			want:    "2.0 kB",
		},
		{
			name:    "with duration",
			outcome: orchestrator.Outcome{Info: audiofile.Info{Bytes: 2048, Duration: 1234567 * time.Microsecond}},
			want:    "2.0 kB, 1.23s",
		},
		{
			name:    "cache hit",
			outcome: orchestrator.Outcome{Info: audiofile.Info{Bytes: 10}, CacheHit: true},
			want:    "10 B, from cache",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := describeAudio(&tt.outcome); got != tt.want {
				t.Errorf("describeAudio() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSamePath(t *testing.T) {
	if !samePath("out.wav", "./out.wav") {
		t.Error("expected relative paths to match")
	}
	if samePath("in.txt", "out.wav") {
		t.Error("expected different paths not to match")
	}
}

func TestCheckSpeakInputs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		output   string
		language string
		from     string
		wantErr  bool
	}{
		{name: "text only", output: "out.wav", language: "hi-IN"},
		{name: "translate to named language", output: "out.wav", language: "hi-IN", from: "en"},
		{name: "auto without translation", output: "out.wav", language: "auto"},
		{name: "auto with translation", output: "out.wav", language: "auto", from: "en", wantErr: true},
		{name: "input equals output", input: "out.wav", output: "./out.wav", language: "hi-IN", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkSpeakInputs(tt.input, tt.output, tt.language, tt.from)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkSpeakInputs() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("नमस्ते", 10); got != "नमस्ते" {
		t.Errorf("expected short text unchanged, got %q", got)
	}
	if got := truncate("abcdef", 3); got != "abc…" {
		t.Errorf("expected truncated text, got %q", got)
	}
}

func TestLoadSettings_FlagOverridesDefault(t *testing.T) {
	t.Setenv("VAANI_API_KEY", "")
	t.Setenv("SARVAM_API_KEY", "env-key")

	var err error
	v, err = config.New("", "")
	if err != nil {
		t.Fatalf("config.New failed: %v", err)
	}

	if err := speakCmd.Flags().Set("speaker", "anushka"); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}
	t.Cleanup(func() {
		_ = speakCmd.Flags().Set("speaker", config.DefaultSpeaker)
	})

	settings, err := loadSettings(speakCmd, speakFlagKeys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if settings.Speaker != "anushka" {
		t.Errorf("expected flag speaker, got %q", settings.Speaker)
	}
	if settings.APIKey != "env-key" {
		t.Errorf("expected key from environment, got %q", settings.APIKey)
	}
	if settings.Model != config.DefaultModel {
		t.Errorf("expected default model, got %q", settings.Model)
	}
}
