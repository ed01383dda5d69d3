package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
	_ "modernc.org/sqlite"

	"github.com/valpere/vaani/internal"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS synthesis_requests (
		id TEXT PRIMARY KEY,
		source_text TEXT NOT NULL,
		language_code TEXT NOT NULL,
		speaker TEXT NOT NULL,
		model TEXT NOT NULL,
		codec TEXT NOT NULL,
		output_path TEXT NOT NULL,
		status TEXT NOT NULL,
		error TEXT,
		audio_bytes INTEGER DEFAULT 0,
		latency_ms INTEGER DEFAULT 0,
		cache_hit BOOLEAN DEFAULT FALSE,
		upstream_request_id TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	-- audio_memory keeps decoded audio keyed by the full synthesis payload
	CREATE TABLE IF NOT EXISTS audio_memory (
		id TEXT PRIMARY KEY,
		source_text TEXT NOT NULL,
		language_code TEXT NOT NULL,
		speaker TEXT NOT NULL,
		model TEXT NOT NULL,
		codec TEXT NOT NULL,
		audio BLOB NOT NULL,
		usage_count INTEGER DEFAULT 1,
		invalidated BOOLEAN DEFAULT FALSE,
		last_used TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(source_text, language_code, speaker, model, codec)
	);

	-- lexicon maps written terms to the form the voice should pronounce
	CREATE TABLE IF NOT EXISTS lexicon (
		id TEXT PRIMARY KEY,
		language_code TEXT NOT NULL,
		term TEXT NOT NULL,
		spoken TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(language_code, term)
	);

	CREATE INDEX IF NOT EXISTS idx_memory_lookup ON audio_memory(source_text, language_code, speaker, model, codec);
	CREATE INDEX IF NOT EXISTS idx_requests_created ON synthesis_requests(created_at);
	CREATE INDEX IF NOT EXISTS idx_lexicon_lookup ON lexicon(language_code);
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) SaveRequest(ctx context.Context, rec internal.SynthesisRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO synthesis_requests (id, source_text, language_code, speaker, model, codec, output_path, status, error, audio_bytes, latency_ms, cache_hit, upstream_request_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.SourceText, rec.LanguageCode, rec.Speaker, rec.Model, rec.Codec, rec.OutputPath,
		rec.Status, rec.Error, rec.AudioBytes, rec.Latency.Milliseconds(), rec.CacheHit, rec.UpstreamRequestID, rec.Timestamp)
	return err
}

// ListRequests returns the most recent runs first. limit ≤ 0 returns all.
func (s *Store) ListRequests(ctx context.Context, limit int) ([]internal.SynthesisRecord, error) {
	query := `SELECT id, source_text, language_code, speaker, model, codec, output_path, status, COALESCE(error, ''), audio_bytes, latency_ms, cache_hit, COALESCE(upstream_request_id, ''), created_at
		FROM synthesis_requests ORDER BY created_at DESC`
	var args []interface{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []internal.SynthesisRecord
	for rows.Next() {
		var r internal.SynthesisRecord
		var latencyMs int64
		if err := rows.Scan(&r.ID, &r.SourceText, &r.LanguageCode, &r.Speaker, &r.Model, &r.Codec, &r.OutputPath,
			&r.Status, &r.Error, &r.AudioBytes, &latencyMs, &r.CacheHit, &r.UpstreamRequestID, &r.Timestamp); err != nil {
			return nil, err
		}
		r.Latency = time.Duration(latencyMs) * time.Millisecond
		records = append(records, r)
	}
	return records, rows.Err()
}

// CacheKey identifies a synthesis payload in the audio memory.
type CacheKey struct {
	Text         string
	LanguageCode string
	Speaker      string
	Model        string
	Codec        string
}

func (k CacheKey) args() []interface{} {
	return []interface{}{normalizeText(k.Text), k.LanguageCode, k.Speaker, k.Model, k.Codec}
}

const memoryKeyClause = `source_text = ? AND language_code = ? AND speaker = ? AND model = ? AND codec = ?`

func (s *Store) GetCachedAudio(ctx context.Context, key CacheKey) ([]byte, bool, error) {
	var audio []byte
	var invalidated bool

	err := s.db.QueryRowContext(ctx,
		`SELECT audio, invalidated FROM audio_memory WHERE `+memoryKeyClause,
		key.args()...).Scan(&audio, &invalidated)

	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if invalidated {
		return nil, false, nil
	}

	args := append([]interface{}{time.Now()}, key.args()...)
	_, err = s.db.ExecContext(ctx,
		`UPDATE audio_memory SET usage_count = usage_count + 1, last_used = ? WHERE `+memoryKeyClause,
		args...)

	return audio, true, err
}

func (s *Store) SaveToMemory(ctx context.Context, key CacheKey, audio []byte) error {
	id := fmt.Sprintf("mem_%d", time.Now().UnixNano())
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO audio_memory (id, source_text, language_code, speaker, model, codec, audio, usage_count, invalidated, last_used, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, 1, FALSE, ?, ?)`,
		id, normalizeText(key.Text), key.LanguageCode, key.Speaker, key.Model, key.Codec, audio, time.Now(), time.Now())
	return err
}

// MemoryEntry is a row from the audio_memory table without the audio itself.
type MemoryEntry struct {
	ID           string
	SourceText   string
	LanguageCode string
	Speaker      string
	Model        string
	Codec        string
	AudioBytes   int
	UsageCount   int
	Invalidated  bool
	LastUsed     time.Time
}

// CacheStats summarises audio memory usage.
type CacheStats struct {
	TotalEntries   int
	ActiveEntries  int
	InvalidEntries int
	TotalUsage     int
	TotalBytes     int64
}

func (s *Store) InvalidateMemory(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `UPDATE audio_memory SET invalidated = TRUE WHERE id = ?`, id)
	return err
}

// DeleteMemory permanently removes an audio memory entry by ID.
func (s *Store) DeleteMemory(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM audio_memory WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("entry not found: %s", id)
	}
	return nil
}

// ClearMemory removes all audio memory entries.
func (s *Store) ClearMemory(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM audio_memory`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ListMemory returns all audio memory entries ordered by most recently used.
func (s *Store) ListMemory(ctx context.Context) ([]MemoryEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source_text, language_code, speaker, model, codec, length(audio), usage_count, invalidated, last_used
		 FROM audio_memory ORDER BY last_used DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []MemoryEntry
	for rows.Next() {
		var e MemoryEntry
		if err := rows.Scan(&e.ID, &e.SourceText, &e.LanguageCode, &e.Speaker, &e.Model, &e.Codec,
			&e.AudioBytes, &e.UsageCount, &e.Invalidated, &e.LastUsed); err != nil {
			return nil, err
		}
		results = append(results, e)
	}

	return results, rows.Err()
}

// Stats returns summary statistics for the audio memory.
func (s *Store) Stats(ctx context.Context) (*CacheStats, error) {
	stats := &CacheStats{}

	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN NOT invalidated THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN invalidated THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(usage_count), 0),
			COALESCE(SUM(length(audio)), 0)
		FROM audio_memory`).Scan(
		&stats.TotalEntries,
		&stats.ActiveEntries,
		&stats.InvalidEntries,
		&stats.TotalUsage,
		&stats.TotalBytes,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// LexiconEntry represents a row in the lexicon table.
type LexiconEntry struct {
	ID           string
	LanguageCode string
	Term         string
	Spoken       string
	CreatedAt    time.Time
}

// AddLexiconTerm inserts or replaces the spoken form of term for a language.
func (s *Store) AddLexiconTerm(ctx context.Context, languageCode, term, spoken string) error {
	id := fmt.Sprintf("lx_%d", time.Now().UnixNano())
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO lexicon (id, language_code, term, spoken) VALUES (?, ?, ?, ?)`,
		id, languageCode, term, spoken)
	return err
}

// GetLexiconTerms returns the term → spoken map for a language.
func (s *Store) GetLexiconTerms(ctx context.Context, languageCode string) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT term, spoken FROM lexicon WHERE language_code = ?`, languageCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	terms := make(map[string]string)
	for rows.Next() {
		var term, spoken string
		if err := rows.Scan(&term, &spoken); err != nil {
			return nil, err
		}
		terms[term] = spoken
	}
	return terms, rows.Err()
}

// ListLexiconTerms returns lexicon entries, optionally filtered by language
// (pass an empty string to return everything).
func (s *Store) ListLexiconTerms(ctx context.Context, languageCode string) ([]LexiconEntry, error) {
	query := `SELECT id, language_code, term, spoken, created_at FROM lexicon`
	var args []interface{}
	if languageCode != "" {
		query += ` WHERE language_code = ?`
		args = append(args, languageCode)
	}
	query += ` ORDER BY language_code, term`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []LexiconEntry
	for rows.Next() {
		var e LexiconEntry
		if err := rows.Scan(&e.ID, &e.LanguageCode, &e.Term, &e.Spoken, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DeleteLexiconTerm removes a lexicon entry by ID.
func (s *Store) DeleteLexiconTerm(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM lexicon WHERE id = ?`, id)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

// normalizeText trims whitespace and applies Unicode NFC normalization
// for consistent cache key comparison.
func normalizeText(text string) string {
	return norm.NFC.String(strings.TrimSpace(text))
}
