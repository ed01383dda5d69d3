package textsource

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	return path
}

func TestResolve_Text(t *testing.T) {
	text := "  पहले कचरे को अलग किया जाना चाहिए.  "

	got, err := Resolve(text, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != text {
		t.Errorf("expected text verbatim, got %q", got)
	}
}

func TestResolve_PlainFile(t *testing.T) {
	path := writeFile(t, "speech.txt", "\nनमस्ते दुनिया\n\n")

	got, err := Resolve("", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "नमस्ते दुनिया" {
		t.Errorf("expected trimmed file contents, got %q", got)
	}
}

func TestResolve_MarkdownFile(t *testing.T) {
	path := writeFile(t, "speech.md", "## Title\n\nSome *emphasis* here.\n")

	got, err := Resolve("", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Title\nSome emphasis here." {
		t.Errorf("unexpected markdown text: %q", got)
	}
}

func TestResolve_BothGiven(t *testing.T) {
	if _, err := Resolve("text", "file.txt"); err == nil {
		t.Error("expected error when both text and input are given")
	}
}

func TestResolve_NoneGiven(t *testing.T) {
	if _, err := Resolve("", ""); err == nil {
		t.Error("expected error when neither text nor input is given")
	}
}

func TestResolve_BlankText(t *testing.T) {
	if _, err := Resolve("   ", ""); err == nil {
		t.Error("expected error for blank text")
	}
}

func TestResolve_EmptyFile(t *testing.T) {
	path := writeFile(t, "empty.txt", "  \n")

	if _, err := Resolve("", path); err == nil {
		t.Error("expected error for empty file")
	}
}

func TestResolve_MissingFile(t *testing.T) {
	if _, err := Resolve("", filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestResolve_InvalidUTF8(t *testing.T) {
	path := writeFile(t, "bad.txt", "\xff\xfe\xfd")

	if _, err := Resolve("", path); err == nil {
		t.Error("expected error for invalid UTF-8")
	}
}

func TestIsMarkdown(t *testing.T) {
	cases := map[string]bool{
		"a.md":       true,
		"b.MARKDOWN": true,
		"c.txt":      false,
		"d":          false,
	}
	for path, want := range cases {
		if got := IsMarkdown(path); got != want {
			t.Errorf("IsMarkdown(%q) = %v, want %v", path, got, want)
		}
	}
}
