package speech

import (
	"sort"
	"strings"
)

// LanguageCodes lists the target_language_code values the provider accepts.
var LanguageCodes = []string{
	"hi-IN", "bn-IN", "ta-IN", "te-IN", "kn-IN", "ml-IN",
	"mr-IN", "gu-IN", "pa-IN", "od-IN", "en-IN",
}

var modelSpeakers = map[string][]string{
	"bulbul:v2": {"anushka", "manisha", "vidya", "arya", "abhilash", "karun", "hitesh"},
}

// Speakers returns the speakers known for model, or nil when the model is unknown.
func Speakers(model string) []string {
	return append([]string(nil), modelSpeakers[model]...)
}

// Models returns the models with a known speaker list.
func Models() []string {
	models := make([]string, 0, len(modelSpeakers))
	for m := range modelSpeakers {
		models = append(models, m)
	}
	sort.Strings(models)
	return models
}

// BaseLanguage returns the ISO 639-1 language of a code such as "hi-IN".
// The provider spells Odia "od"; the ISO code is "or".
func BaseLanguage(code string) string {
	base, _, _ := strings.Cut(code, "-")
	base = strings.ToLower(base)
	if base == "od" {
		return "or"
	}
	return base
}
