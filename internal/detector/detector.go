// Package detector identifies the language of input text and maps it to the
// language codes accepted by the speech provider.
package detector

import (
	"fmt"
	"strings"

	lingua "github.com/pemistahl/lingua-go"
)

// providerCodes maps ISO 639-1 codes to target_language_code values.
var providerCodes = map[string]string{
	"hi": "hi-IN",
	"bn": "bn-IN",
	"ta": "ta-IN",
	"te": "te-IN",
	"kn": "kn-IN",
	"ml": "ml-IN",
	"mr": "mr-IN",
	"gu": "gu-IN",
	"pa": "pa-IN",
	"or": "od-IN",
	"en": "en-IN",
}

// Detector is expensive to build; create one per process.
type Detector struct {
	detector lingua.LanguageDetector
}

func New() *Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromAllLanguages().
		Build()

	return &Detector{detector: detector}
}

func (d *Detector) Detect(text string) (lingua.Language, bool) {
	if strings.TrimSpace(text) == "" {
		return lingua.Unknown, false
	}
	return d.detector.DetectLanguageOf(text)
}

// DetectISO returns the lower-case ISO 639-1 code of text.
func (d *Detector) DetectISO(text string) (string, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}

// LanguageCode detects text and returns the provider code, e.g. "hi-IN".
func (d *Detector) LanguageCode(text string) (string, error) {
	iso, ok := d.DetectISO(text)
	if !ok {
		return "", fmt.Errorf("could not detect the language of the text")
	}
	code, ok := ProviderCode(iso)
	if !ok {
		return "", fmt.Errorf("detected language %q is not supported for synthesis", iso)
	}
	return code, nil
}

// ProviderCode maps an ISO 639-1 code to the provider's language code.
func ProviderCode(iso string) (string, bool) {
	code, ok := providerCodes[strings.ToLower(iso)]
	return code, ok
}

// ISOCode is the inverse of ProviderCode: "od-IN" → "or", "hi-IN" → "hi".
func ISOCode(providerCode string) string {
	for iso, code := range providerCodes {
		if strings.EqualFold(code, providerCode) {
			return iso
		}
	}
	base, _, _ := strings.Cut(providerCode, "-")
	return strings.ToLower(base)
}
