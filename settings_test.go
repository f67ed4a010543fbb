package md2html

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.MathJax.WebURL != defaultMathJaxWebURL {
		t.Errorf("WebURL = %q, want default", s.MathJax.WebURL)
	}
	if s.MathJax.LocalURL != defaultMathJaxLocalURL {
		t.Errorf("LocalURL = %q, want default", s.MathJax.LocalURL)
	}
	if s.Highlight.Style != "" {
		t.Errorf("Highlight.Style = %q, want empty", s.Highlight.Style)
	}
}

func TestLoadSettingsFromMissingFile(t *testing.T) {
	s, err := LoadSettingsFrom(filepath.Join(t.TempDir(), "settings.yaml"))
	if err != nil {
		t.Fatalf("LoadSettingsFrom() error = %v", err)
	}
	if s.MathJax.WebURL != defaultMathJaxWebURL {
		t.Errorf("WebURL = %q, want default for a missing file", s.MathJax.WebURL)
	}
}

func TestLoadSettingsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := "mathjax:\n  webUrl: https://example.com/MathJax.js\nhighlight:\n  style: monokai\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	s, err := LoadSettingsFrom(path)
	if err != nil {
		t.Fatalf("LoadSettingsFrom() error = %v", err)
	}
	if s.MathJax.WebURL != "https://example.com/MathJax.js" {
		t.Errorf("WebURL = %q, want the configured URL", s.MathJax.WebURL)
	}
	if s.MathJax.LocalURL != defaultMathJaxLocalURL {
		t.Errorf("LocalURL = %q, want the default backfilled", s.MathJax.LocalURL)
	}
	if s.Highlight.Style != "monokai" {
		t.Errorf("Highlight.Style = %q, want monokai", s.Highlight.Style)
	}
}

func TestLoadSettingsFromInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("mathjax: [unclosed\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	_, err := LoadSettingsFrom(path)
	if !errors.Is(err, ErrSettingsParse) {
		t.Errorf("LoadSettingsFrom() error = %v, want ErrSettingsParse", err)
	}
}

func TestLoadSettingsFromUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("mathjaks:\n  webUrl: x\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	_, err := LoadSettingsFrom(path)
	if !errors.Is(err, ErrSettingsParse) {
		t.Errorf("LoadSettingsFrom() error = %v, want ErrSettingsParse for a typo", err)
	}
}
