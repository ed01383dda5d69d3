package speech

import (
	"context"
	"time"
)

// ServiceConfig carries per-call settings that override the service defaults.
type ServiceConfig struct {
	APIKey   string        `mapstructure:"api_key" json:"api_key"`
	Endpoint string        `mapstructure:"endpoint" json:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout" json:"timeout"`
}

// SynthesizeRequest is the JSON payload sent to the provider. All fields are
// required and are forwarded exactly as given.
type SynthesizeRequest struct {
	Text         string `json:"text"`
	LanguageCode string `json:"target_language_code"`
	Speaker      string `json:"speaker"`
	Model        string `json:"model"`
	Codec        string `json:"output_audio_codec"`
}

// Envelope is the provider's response body. Only Audios[0] is consumed.
type Envelope struct {
	RequestID string   `json:"request_id,omitempty"`
	Audios    []string `json:"audios"`
}

type SynthesisResult struct {
	ServiceName string            `json:"service_name"`
	RequestID   string            `json:"request_id,omitempty"`
	Audio       []byte            `json:"-"`
	Codec       string            `json:"codec"`
	Metadata    map[string]string `json:"metadata"`
	Latency     time.Duration     `json:"latency"`
}

type SynthesisService interface {
	Name() string
	Synthesize(ctx context.Context, cfg ServiceConfig, req SynthesizeRequest) (*SynthesisResult, error)
	IsAvailable(ctx context.Context) error
	SupportedLanguages(ctx context.Context) ([]string, error)
}
