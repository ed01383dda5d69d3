package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SARVAM_API_KEY", "")
	t.Setenv("VAANI_API_KEY", "")

	v, err := New("", "")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	s, err := Load(v)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s.Language != "hi-IN" || s.Speaker != "manisha" || s.Model != "bulbul:v2" || s.Codec != "wav" {
		t.Errorf("unexpected defaults: %+v", s)
	}
	if s.Output != "output.wav" {
		t.Errorf("expected output.wav, got %q", s.Output)
	}
	if s.Timeout != DefaultTimeout {
		t.Errorf("expected %v, got %v", DefaultTimeout, s.Timeout)
	}
	if s.Endpoint != DefaultEndpoint {
		t.Errorf("expected default endpoint, got %q", s.Endpoint)
	}
}

func TestLoad_SarvamAPIKeyEnv(t *testing.T) {
	t.Setenv("VAANI_API_KEY", "")
	t.Setenv("SARVAM_API_KEY", "sk-env")

	v, err := New("", "")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	s, _ := Load(v)

	if s.APIKey != "sk-env" {
		t.Errorf("expected key from SARVAM_API_KEY, got %q", s.APIKey)
	}
}

func TestLoad_PrefixedEnv(t *testing.T) {
	t.Setenv("VAANI_SPEAKER", "anushka")
	t.Setenv("VAANI_TIMEOUT", "5s")

	v, err := New("", "")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	s, _ := Load(v)

	if s.Speaker != "anushka" {
		t.Errorf("expected anushka, got %q", s.Speaker)
	}
	if s.Timeout != 5*time.Second {
		t.Errorf("expected 5s, got %v", s.Timeout)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	t.Setenv("VAANI_MODEL", "")

	path := filepath.Join(t.TempDir(), "vaani.yaml")
	content := "model: bulbul:v2\ncodec: mp3\noutput: speech.mp3\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	v, err := New(path, "")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	s, _ := Load(v)

	if s.Codec != "mp3" || s.Output != "speech.mp3" {
		t.Errorf("expected values from config file, got %+v", s)
	}
}

func TestNew_MissingConfigFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent.yaml"), "")
	if err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestNew_MissingEnvFileIgnored(t *testing.T) {
	_, err := New("", filepath.Join(t.TempDir(), ".env"))
	if err != nil {
		t.Errorf("missing env file should be ignored, got %v", err)
	}
}

func TestNew_EnvFile(t *testing.T) {
	t.Setenv("SARVAM_API_KEY", "")
	os.Unsetenv("SARVAM_API_KEY")
	t.Setenv("VAANI_API_KEY", "")
	os.Unsetenv("VAANI_API_KEY")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("SARVAM_API_KEY=sk-dotenv\n"), 0o644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	v, err := New("", path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	s, _ := Load(v)

	if s.APIKey != "sk-dotenv" {
		t.Errorf("expected key from env file, got %q", s.APIKey)
	}
}

func validSettings() *Settings {
	return &Settings{
		APIKey:   "sk",
		Language: DefaultLanguage,
		Speaker:  DefaultSpeaker,
		Model:    DefaultModel,
		Codec:    DefaultCodec,
		Output:   DefaultOutput,
		Timeout:  DefaultTimeout,
	}
}

func TestSettings_Validate(t *testing.T) {
	if err := validSettings().Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSettings_Validate_MissingKey(t *testing.T) {
	s := validSettings()
	s.APIKey = " "

	err := s.Validate()
	if err == nil || !strings.Contains(err.Error(), "API key") {
		t.Errorf("expected API key error, got %v", err)
	}
}

func TestSettings_Validate_EmptyField(t *testing.T) {
	s := validSettings()
	s.Speaker = ""

	err := s.Validate()
	if err == nil || !strings.Contains(err.Error(), "speaker") {
		t.Errorf("expected speaker error, got %v", err)
	}
}

func TestSettings_Validate_Timeout(t *testing.T) {
	s := validSettings()
	s.Timeout = 0

	if err := s.Validate(); err == nil {
		t.Error("expected timeout error")
	}
}
