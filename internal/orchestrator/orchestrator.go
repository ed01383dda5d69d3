// Package orchestrator runs a single speak job from source text to a written
// audio file.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/valpere/vaani/internal"
	"github.com/valpere/vaani/internal/audiofile"
	"github.com/valpere/vaani/internal/lexicon"
	"github.com/valpere/vaani/internal/speech"
	"github.com/valpere/vaani/internal/store"
	"github.com/valpere/vaani/internal/translator"
)

type OrchestratorConfig struct {
	Service     speech.ServiceConfig
	Translation translator.ServiceConfig
	UseCache    bool
	UseLexicon  bool
}

// AudioWriter persists the final audio bytes.
type AudioWriter interface {
	Write(path string, data []byte) error
}

// LanguageValidator reports whether text matches a language code.
type LanguageValidator interface {
	IsValid(text, languageCode string) (bool, error)
}

// Memory is the persistence the pipeline uses for cache, lexicon and history.
type Memory interface {
	GetCachedAudio(ctx context.Context, key store.CacheKey) ([]byte, bool, error)
	SaveToMemory(ctx context.Context, key store.CacheKey, audio []byte) error
	GetLexiconTerms(ctx context.Context, languageCode string) (map[string]string, error)
	SaveRequest(ctx context.Context, rec internal.SynthesisRecord) error
}

// Job is one piece of text to be spoken into OutputPath.
type Job struct {
	Text          string
	TranslateFrom string
	OutputPath    string
	LanguageCode  string
	Speaker       string
	Model         string
	Codec         string
}

type Outcome struct {
	RequestID         string
	OutputPath        string
	SpokenText        string
	Info              audiofile.Info
	CacheHit          bool
	UpstreamRequestID string
	Latency           time.Duration
	Warnings          []string
}

type Orchestrator struct {
	service    speech.SynthesisService
	writer     AudioWriter
	memory     Memory
	translator translator.TranslationService
	validator  LanguageValidator
	config     OrchestratorConfig
	logger     *zap.Logger
}

func New(service speech.SynthesisService, writer AudioWriter, config OrchestratorConfig, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if writer == nil {
		writer = audiofile.NewFileStore()
	}
	return &Orchestrator{
		service: service,
		writer:  writer,
		config:  config,
		logger:  logger,
	}
}

func (o *Orchestrator) WithMemory(m Memory) *Orchestrator {
	o.memory = m
	return o
}

func (o *Orchestrator) WithTranslator(t translator.TranslationService) *Orchestrator {
	o.translator = t
	return o
}

func (o *Orchestrator) WithValidator(v LanguageValidator) *Orchestrator {
	o.validator = v
	return o
}

// Execute runs translation, lexicon, validation, cache lookup, synthesis,
// write and history in that order. The lexicon is applied to the text in the
// target language. The output file is written only when
// audio was obtained. History is recorded for failures too.
func (o *Orchestrator) Execute(ctx context.Context, job Job) (*Outcome, error) {
	start := time.Now()
	outcome := &Outcome{
		RequestID:  uuid.New().String(),
		OutputPath: job.OutputPath,
	}

	err := o.run(ctx, job, outcome)
	outcome.Latency = time.Since(start)

	o.record(ctx, job, outcome, err)

	if err != nil {
		return outcome, err
	}
	return outcome, nil
}

func (o *Orchestrator) run(ctx context.Context, job Job, outcome *Outcome) error {
	if o.service == nil {
		return errors.New("no synthesis service configured")
	}

	text, err := o.prepareText(ctx, job, outcome)
	if err != nil {
		return err
	}
	outcome.SpokenText = text

	req := speech.SynthesizeRequest{
		Text:         text,
		LanguageCode: job.LanguageCode,
		Speaker:      job.Speaker,
		Model:        job.Model,
		Codec:        job.Codec,
	}
	key := store.CacheKey{
		Text:         text,
		LanguageCode: job.LanguageCode,
		Speaker:      job.Speaker,
		Model:        job.Model,
		Codec:        job.Codec,
	}

	audio, hit := o.lookupCache(ctx, key)
	if hit {
		outcome.CacheHit = true
	} else {
		res, err := o.service.Synthesize(ctx, o.config.Service, req)
		if err != nil {
			return err
		}
		audio = res.Audio
		outcome.UpstreamRequestID = res.RequestID
		o.logger.Debug("synthesis finished",
			zap.String("service", res.ServiceName),
			zap.String("request_id", res.RequestID),
			zap.Duration("latency", res.Latency))
	}

	if err := o.writer.Write(job.OutputPath, audio); err != nil {
		return err
	}
	outcome.Info = audiofile.Inspect(audio, job.Codec)

	if !hit {
		o.saveCache(ctx, key, audio)
	}
	return nil
}

func (o *Orchestrator) prepareText(ctx context.Context, job Job, outcome *Outcome) (string, error) {
	text := job.Text

	if job.TranslateFrom != "" {
		if o.translator == nil {
			return "", errors.New("translation requested but no translator configured")
		}
		res, err := o.translator.Translate(ctx, o.config.Translation, translator.TranslateRequest{
			Text:       text,
			SourceLang: job.TranslateFrom,
			TargetLang: speech.BaseLanguage(job.LanguageCode),
		})
		if err != nil {
			return "", fmt.Errorf("translation failed: %w", err)
		}
		text = res.TranslatedText
		o.logger.Info("text translated",
			zap.String("service", res.ServiceName),
			zap.String("from", job.TranslateFrom),
			zap.String("to", job.LanguageCode),
			zap.Duration("latency", res.Latency))
	}

	if o.config.UseLexicon && o.memory != nil {
		terms, err := o.memory.GetLexiconTerms(ctx, job.LanguageCode)
		if err != nil {
			o.logger.Warn("failed to load lexicon", zap.Error(err))
		} else if len(terms) > 0 {
			text = lexicon.Apply(text, terms)
			o.logger.Debug("lexicon applied", zap.Int("terms", len(terms)))
		}
	}

	if o.validator != nil {
		if ok, err := o.validator.IsValid(text, job.LanguageCode); !ok && err != nil {
			o.logger.Warn("language mismatch", zap.Error(err))
			outcome.Warnings = append(outcome.Warnings, err.Error())
		}
	}

	return text, nil
}

func (o *Orchestrator) lookupCache(ctx context.Context, key store.CacheKey) ([]byte, bool) {
	if !o.config.UseCache || o.memory == nil {
		return nil, false
	}
	audio, ok, err := o.memory.GetCachedAudio(ctx, key)
	if err != nil {
		o.logger.Warn("cache lookup failed", zap.Error(err))
		return nil, false
	}
	if ok {
		o.logger.Debug("cache hit", zap.Int("bytes", len(audio)))
	}
	return audio, ok
}

func (o *Orchestrator) saveCache(ctx context.Context, key store.CacheKey, audio []byte) {
	if !o.config.UseCache || o.memory == nil {
		return
	}
	if err := o.memory.SaveToMemory(ctx, key, audio); err != nil {
		o.logger.Warn("failed to cache audio", zap.Error(err))
	}
}

func (o *Orchestrator) record(ctx context.Context, job Job, outcome *Outcome, runErr error) {
	if o.memory == nil {
		return
	}

	rec := internal.SynthesisRecord{
		ID:                outcome.RequestID,
		SourceText:        job.Text,
		LanguageCode:      job.LanguageCode,
		Speaker:           job.Speaker,
		Model:             job.Model,
		Codec:             job.Codec,
		OutputPath:        job.OutputPath,
		Status:            internal.StatusOK,
		AudioBytes:        outcome.Info.Bytes,
		Latency:           outcome.Latency,
		CacheHit:          outcome.CacheHit,
		UpstreamRequestID: outcome.UpstreamRequestID,
		Timestamp:         time.Now(),
	}
	if runErr != nil {
		rec.Status = internal.StatusFailed
		rec.Error = runErr.Error()
	}

	if err := o.memory.SaveRequest(ctx, rec); err != nil {
		o.logger.Warn("failed to record history", zap.Error(err))
	}
}
