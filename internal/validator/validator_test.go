package validator

import (
	"testing"

	"github.com/valpere/vaani/internal/detector"
)

func TestIsValid_EmptyLanguageCode(t *testing.T) {
	v := New()

	valid, err := v.IsValid("Some text to speak", "")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !valid {
		t.Error("expected valid=true for empty language code")
	}
}

func TestIsValid_EmptyText(t *testing.T) {
	v := New()

	valid, err := v.IsValid("   ", "hi-IN")
	if err == nil {
		t.Error("expected error for empty text")
	}
	if valid {
		t.Error("expected valid=false for empty text")
	}
}

func TestIsValid_ShortText(t *testing.T) {
	v := New()

	valid, err := v.IsValid("Hi", "hi-IN")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !valid {
		t.Error("expected valid=true for short text (below threshold)")
	}
}

func TestIsValid_EnglishForEnglishVoice(t *testing.T) {
	v := New()

	text := "This is a longer piece of text that should be detected as English."
	valid, err := v.IsValid(text, "en-IN")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !valid {
		t.Error("expected valid=true when detecting English for en-IN")
	}
}

func TestIsValid_MismatchedLanguage(t *testing.T) {
	v := NewWithDetector(detector.New())

	englishText := "This is a longer piece of text that should be detected as English."
	valid, err := v.IsValid(englishText, "hi-IN")
	if err == nil {
		t.Error("expected error for mismatched language")
	}
	if valid {
		t.Error("expected valid=false when detecting English but expecting Hindi")
	}
}

func TestIsValid_TamilText(t *testing.T) {
	v := New()

	tamilText := "வணக்கம், இது தமிழில் எழுதப்பட்ட ஒரு நீண்ட சோதனை வாக்கியம் ஆகும்."
	valid, err := v.IsValid(tamilText, "ta-IN")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !valid {
		t.Error("expected valid=true when detecting Tamil for ta-IN")
	}
}
