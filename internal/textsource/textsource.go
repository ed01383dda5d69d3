// Package textsource resolves the text a speak run should synthesize.
package textsource

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/valpere/vaani/internal/markdown"
)

// Resolve returns text unchanged when it is set, otherwise the contents of
// inputPath. Markdown files are reduced to their readable text. Exactly one
// of text and inputPath must be given.
func Resolve(text, inputPath string) (string, error) {
	switch {
	case text != "" && inputPath != "":
		return "", fmt.Errorf("use either --text or --input, not both")
	case text == "" && inputPath == "":
		return "", fmt.Errorf("nothing to synthesize: use --text or --input")
	case text != "":
		if strings.TrimSpace(text) == "" {
			return "", fmt.Errorf("text must not be blank")
		}
		return text, nil
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("input file %s is not valid UTF-8", inputPath)
	}

	var out string
	if IsMarkdown(inputPath) {
		out = markdown.ToSpeechText(data)
	} else {
		out = strings.TrimSpace(string(data))
	}

	if out == "" {
		return "", fmt.Errorf("input file %s has no text", inputPath)
	}
	return out, nil
}

func IsMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
