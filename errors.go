package md2html

import (
	"errors"

	"github.com/alnah/go-md2html/internal/extcfg"
)

// Sentinel errors for library operations.
var (
	// ErrUnknownExtension marks a warning-class condition: a raw extension
	// name that resolves under no namespace prefix. The offending token is
	// skipped and resolution continues.
	ErrUnknownExtension = errors.New("unknown extension")

	// ErrBadExtensionConfig marks a warning-class condition: a token whose
	// parenthesized argument list is not a literal-only keyword expression.
	// The offending token is skipped and resolution continues.
	ErrBadExtensionConfig = extcfg.ErrMalformed

	// ErrConvert wraps failures reported by the markdown engine.
	ErrConvert = errors.New("markdown conversion failed")

	// ErrSettingsParse indicates a present but unparseable settings file.
	ErrSettingsParse = errors.New("failed to parse settings")

	// ErrStylesheet indicates stylesheet generation failed.
	ErrStylesheet = errors.New("stylesheet generation failed")
)
