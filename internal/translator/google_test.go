package translator

import (
	"context"
	"testing"
)

func TestGoogleService_Name(t *testing.T) {
	svc := NewGoogleService(nil)

	if svc.Name() != "google" {
		t.Errorf("expected 'google', got %q", svc.Name())
	}
}

func TestGoogleService_Translate_EmptyText(t *testing.T) {
	svc := NewGoogleService(nil)

	result, err := svc.Translate(context.Background(), ServiceConfig{}, TranslateRequest{
		Text:       "   ",
		SourceLang: "en",
		TargetLang: "hi",
	})

	if err == nil {
		t.Error("expected error for empty text")
	}
	if result == nil {
		t.Fatal("expected non-nil result")
	}
	if result.Error == "" {
		t.Error("expected error message in result")
	}
	if result.ServiceName != "google" {
		t.Errorf("expected service name 'google', got %q", result.ServiceName)
	}
}

func TestGoogleService_Translate_InvalidTargetLanguage(t *testing.T) {
	svc := NewGoogleService(nil)

	result, err := svc.Translate(context.Background(), ServiceConfig{}, TranslateRequest{
		Text:       "Hello",
		SourceLang: "en",
		TargetLang: "not a language",
	})

	if err == nil {
		t.Error("expected error for invalid target language")
	}
	if result == nil || result.Error == "" {
		t.Error("expected error message in result")
	}
}

func TestGoogleService_Translate_InvalidSourceLanguage(t *testing.T) {
	svc := NewGoogleService(nil)

	_, err := svc.Translate(context.Background(), ServiceConfig{}, TranslateRequest{
		Text:       "Hello",
		SourceLang: "??",
		TargetLang: "hi",
	})

	if err == nil {
		t.Error("expected error for invalid source language")
	}
}

func TestClientOptions(t *testing.T) {
	if got := len(clientOptions(ServiceConfig{})); got != 0 {
		t.Errorf("expected no options, got %d", got)
	}
	if got := len(clientOptions(ServiceConfig{Credentials: "key.json", ProjectID: "proj"})); got != 2 {
		t.Errorf("expected 2 options, got %d", got)
	}
}

var _ TranslationService = (*GoogleService)(nil)
