// Package validator checks that text to be spoken is in the language the voice expects.
package validator

import (
	"fmt"
	"strings"

	"github.com/valpere/vaani/internal/detector"
)

// minValidationLength is the minimum rune count required to attempt language detection.
// Shorter texts produce unreliable results and are accepted without validation.
const minValidationLength = 20

// Validator checks text against a target_language_code such as "hi-IN".
type Validator struct {
	det *detector.Detector
}

func New() *Validator {
	return &Validator{det: detector.New()}
}

// NewWithDetector reuses an existing detector.
func NewWithDetector(det *detector.Detector) *Validator {
	return &Validator{det: det}
}

// IsValid returns true when text appears to be written in the language of
// languageCode. Short texts and texts whose language cannot be determined
// pass. A mismatch returns an error naming both languages.
func (v *Validator) IsValid(text, languageCode string) (bool, error) {
	if languageCode == "" {
		return true, nil
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return false, fmt.Errorf("text is empty")
	}

	if len([]rune(text)) < minValidationLength {
		return true, nil
	}

	detected, ok := v.det.DetectISO(text)
	if !ok {
		return true, nil
	}

	expected := detector.ISOCode(languageCode)
	if !strings.EqualFold(detected, expected) {
		return false, fmt.Errorf("voice expects %s but text looks like %s", languageCode, detected)
	}

	return true, nil
}
