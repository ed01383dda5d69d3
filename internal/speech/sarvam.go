package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

const (
	DefaultEndpoint = "https://api.sarvam.ai/text-to-speech"
	DefaultTimeout  = 60 * time.Second
)

// SarvamService talks to the Sarvam AI text-to-speech endpoint.
type SarvamService struct {
	apiKey   string
	endpoint string
	client   *http.Client
	logger   *zap.Logger
	progress io.Writer
}

func NewSarvamService(apiKey, endpoint string, logger *zap.Logger) *SarvamService {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SarvamService{
		apiKey:   apiKey,
		endpoint: endpoint,
		client:   &http.Client{},
		logger:   logger,
	}
}

func (s *SarvamService) Name() string {
	return "sarvam"
}

// SetProgress enables a byte progress bar on w while the response body is read.
func (s *SarvamService) SetProgress(w io.Writer) {
	s.progress = w
}

func (s *SarvamService) Synthesize(ctx context.Context, cfg ServiceConfig, req SynthesizeRequest) (*SynthesisResult, error) {
	result := &SynthesisResult{ServiceName: s.Name(), Codec: req.Codec}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	apiKey := s.apiKey
	if apiKey == "" {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		return result, fmt.Errorf("Sarvam API key required")
	}

	if err := validateRequest(req); err != nil {
		return result, err
	}

	endpoint := s.endpoint
	if cfg.Endpoint != "" {
		endpoint = cfg.Endpoint
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	jsonData, err := json.Marshal(req)
	if err != nil {
		return result, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return result, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("api-subscription-key", apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	s.logger.Debug("sending synthesis request",
		zap.String("endpoint", endpoint),
		zap.String("language", req.LanguageCode),
		zap.String("speaker", req.Speaker),
		zap.String("model", req.Model),
		zap.String("codec", req.Codec),
		zap.Int("text_runes", len([]rune(req.Text))),
	)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return result, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return result, &UpstreamRequestError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	body, err := s.readBody(resp)
	if err != nil {
		return result, fmt.Errorf("failed to read response: %w", err)
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return result, &MalformedResponseError{Reason: "invalid JSON body", Err: err}
	}

	encoded, err := FirstAudio(env)
	if err != nil {
		return result, err
	}

	audio, err := DecodeAudio(encoded)
	if err != nil {
		return result, err
	}

	result.RequestID = env.RequestID
	result.Audio = audio
	result.Metadata = map[string]string{
		"model":   req.Model,
		"speaker": req.Speaker,
		"audios":  fmt.Sprintf("%d", len(env.Audios)),
	}

	s.logger.Debug("synthesis response decoded",
		zap.String("request_id", env.RequestID),
		zap.Int("audio_bytes", len(audio)),
		zap.Duration("latency", time.Since(start)),
	)

	return result, nil
}

func (s *SarvamService) readBody(resp *http.Response) ([]byte, error) {
	if s.progress == nil {
		return io.ReadAll(resp.Body)
	}

	bar := progressbar.NewOptions64(resp.ContentLength,
		progressbar.OptionSetWriter(s.progress),
		progressbar.OptionSetDescription("receiving audio"),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)

	var buf bytes.Buffer
	_, err := io.Copy(io.MultiWriter(&buf, bar), resp.Body)
	_ = bar.Finish()
	return buf.Bytes(), err
}

func validateRequest(req SynthesizeRequest) error {
	fields := []struct {
		name  string
		value string
	}{
		{"text", req.Text},
		{"target_language_code", req.LanguageCode},
		{"speaker", req.Speaker},
		{"model", req.Model},
		{"output_audio_codec", req.Codec},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%s is required", f.name)
		}
	}
	return nil
}

func (s *SarvamService) IsAvailable(ctx context.Context) error {
	if s.apiKey == "" {
		return fmt.Errorf("Sarvam API key not configured")
	}
	return nil
}

func (s *SarvamService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return append([]string(nil), LanguageCodes...), nil
}
