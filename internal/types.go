package internal

import "time"

// SynthesisRecord is one speak run as kept in the history table.
type SynthesisRecord struct {
	ID                string        `json:"id"`
	SourceText        string        `json:"source_text"`
	LanguageCode      string        `json:"language_code"`
	Speaker           string        `json:"speaker"`
	Model             string        `json:"model"`
	Codec             string        `json:"codec"`
	OutputPath        string        `json:"output_path"`
	Status            string        `json:"status"`
	Error             string        `json:"error,omitempty"`
	AudioBytes        int           `json:"audio_bytes"`
	Latency           time.Duration `json:"latency"`
	CacheHit          bool          `json:"cache_hit"`
	UpstreamRequestID string        `json:"upstream_request_id,omitempty"`
	Timestamp         time.Time     `json:"timestamp"`
}

const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)
