package md2html

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Default MathJax locations: the Debian packaging path for local use and
// the public CDN for web pages.
const (
	defaultMathJaxWebURL   = "https://cdn.mathjax.org/mathjax/latest/MathJax.js?config=TeX-AMS-MML_HTMLorMML"
	defaultMathJaxLocalURL = "/usr/share/javascript/mathjax/MathJax.js?config=TeX-AMS-MML_HTMLorMML"
)

// configSubdir is this project's directory under os.UserConfigDir. It holds
// the optional settings file and the user-level extension list.
const configSubdir = "go-md2html"

// settingsFile is the optional YAML settings file name.
const settingsFile = "settings.yaml"

// Settings holds user-level tunables that are not per-extension
// configuration: where MathJax lives and which highlight style stylesheet
// generation defaults to.
type Settings struct {
	MathJax   MathJaxSettings   `yaml:"mathjax"`
	Highlight HighlightSettings `yaml:"highlight"`
}

// MathJaxSettings selects the loader script URLs.
type MathJaxSettings struct {
	WebURL   string `yaml:"webUrl"`
	LocalURL string `yaml:"localUrl"`
}

// HighlightSettings selects stylesheet defaults.
type HighlightSettings struct {
	Style string `yaml:"style"` // chroma style name; empty = library default
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() *Settings {
	return &Settings{
		MathJax: MathJaxSettings{
			WebURL:   defaultMathJaxWebURL,
			LocalURL: defaultMathJaxLocalURL,
		},
	}
}

// LoadSettings reads the settings file from the user configuration
// directory. A missing file (or an undeterminable config directory) yields
// defaults; a present but invalid file is an error.
func LoadSettings() (*Settings, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultSettings(), nil
	}
	return LoadSettingsFrom(filepath.Join(dir, configSubdir, settingsFile))
}

// LoadSettingsFrom reads settings from an explicit path, applying defaults
// for absent fields.
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- settings path derives from the user config dir
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return nil, fmt.Errorf("reading settings file: %w", err)
	}

	s := DefaultSettings()
	if err := yamlutil.UnmarshalStrict(data, s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSettingsParse, err)
	}
	if s.MathJax.WebURL == "" {
		s.MathJax.WebURL = defaultMathJaxWebURL
	}
	if s.MathJax.LocalURL == "" {
		s.MathJax.LocalURL = defaultMathJaxLocalURL
	}
	return s, nil
}
