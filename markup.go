package md2html

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yuin/goldmark"
	frontmatter "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
	ghtml "github.com/yuin/goldmark/renderer/html"

	"github.com/alnah/go-md2html/internal/extcfg"
	"github.com/alnah/go-md2html/internal/metaext"
)

// extensionListFile is the per-user and per-directory extension list name.
const extensionListFile = "markdown-extensions.txt"

// WarnFunc receives warning-class conditions as they are encountered
// during extension resolution.
type WarnFunc func(error)

// Markup converts markdown text to HTML with a per-document extension set.
//
// The explicitly requested and globally configured extension lists are
// fixed for the instance's lifetime; the document-declared list (the
// first-line Required-Extensions directive) is rescanned on every Convert
// call, so two documents converted through one instance can run with
// different extension sets.
//
// A Markup instance is not safe for concurrent Convert calls: each call
// replaces the instance's warning state. Use one instance per goroutine or
// serialize calls. The name cache shared between instances is safe for
// concurrent use.
type Markup struct {
	filename  string
	requested []string
	explicit  bool
	registry  *Registry
	cache     *NameCache
	settings  *Settings
	warnFn    WarnFunc

	base         *ResolvedExtensions
	baseWarnings []error
	baseEngine   goldmark.Markdown
	warnings     []error
}

// Option configures a Markup.
type Option func(*Markup)

// WithFilename records the path of the source document. It is used only to
// locate the extension list file sitting beside the source.
func WithFilename(filename string) Option {
	return func(m *Markup) { m.filename = filename }
}

// WithExtensions fixes the explicitly requested extension tokens. Passing
// an empty (or nil) slice suppresses the global extension list files;
// omitting the option entirely consults them.
func WithExtensions(tokens []string) Option {
	return func(m *Markup) {
		m.requested = tokens
		m.explicit = true
	}
}

// WithRegistry replaces the builtin extension registry.
func WithRegistry(r *Registry) Option {
	return func(m *Markup) { m.registry = r }
}

// WithNameCache replaces the process-wide canonicalization cache, letting
// tests isolate cache state.
func WithNameCache(c *NameCache) Option {
	return func(m *Markup) { m.cache = c }
}

// WithSettings replaces the settings loaded from the user configuration
// directory.
func WithSettings(s *Settings) Option {
	return func(m *Markup) { m.settings = s }
}

// WithWarnFunc installs a hook invoked for every warning-class condition.
func WithWarnFunc(fn WarnFunc) Option {
	return func(m *Markup) { m.warnFn = fn }
}

// New creates a Markup instance and resolves its explicit and global
// extension portion once. Unknown or malformed tokens in that portion are
// warnings, not errors; New fails only when the settings file exists and
// cannot be parsed.
func New(opts ...Option) (*Markup, error) {
	m := &Markup{
		registry: BuiltinRegistry(),
		cache:    defaultNameCache,
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.settings == nil {
		s, err := LoadSettings()
		if err != nil {
			return nil, err
		}
		m.settings = s
	}

	tokens := append([]string(nil), m.requested...)
	if !m.explicit {
		tokens = append(tokens, m.globalExtensions()...)
	}

	m.base = newResolvedExtensions()
	m.applyTokens(m.base, tokens)
	m.baseWarnings = append([]error(nil), m.warnings...)
	return m, nil
}

// globalExtensions loads the user-level extension list and the list beside
// the source file, in that order. Missing files contribute nothing.
func (m *Markup) globalExtensions() []string {
	var tokens []string
	if dir, err := os.UserConfigDir(); err == nil {
		tokens = append(tokens, extcfg.LoadList(filepath.Join(dir, configSubdir, extensionListFile))...)
	}
	localDir := ""
	if m.filename != "" {
		localDir = filepath.Dir(m.filename)
	}
	tokens = append(tokens, extcfg.LoadList(filepath.Join(localDir, extensionListFile))...)
	return tokens
}

// Warnings returns the warning-class conditions collected by the most
// recent resolution (construction or conversion).
func (m *Markup) Warnings() []error {
	return m.warnings
}

func (m *Markup) warn(err error) {
	m.warnings = append(m.warnings, err)
	if m.warnFn != nil {
		m.warnFn(err)
	}
}

// applyTokens folds raw tokens into rs in encounter order.
func (m *Markup) applyTokens(rs *ResolvedExtensions, tokens []string) {
	for _, token := range tokens {
		switch token {
		case "mathjax":
			// Pseudo-extension: enables the dollar delimiter on the math
			// extension without touching the name set. If remove_extra
			// dropped math earlier, it stays dropped.
			rs.Configs[ExtMath] = ExtensionConfig{"enable_dollar_delimiter": true}
		case "remove_extra":
			// Pseudo-extension: subtracts the baseline defaults. Names
			// added by later tokens are kept.
			delete(rs.Names, ExtExtra)
			delete(rs.Names, ExtMath)
		default:
			rawName, cfg, err := extcfg.Parse(token)
			if err != nil {
				m.warn(err)
				continue
			}
			canonical, ok := m.cache.Lookup(rawName, m.registry.Canonicalize)
			if !ok {
				m.warn(fmt.Errorf("%w: %q", ErrUnknownExtension, rawName))
				continue
			}
			rs.Names[canonical] = struct{}{}
			rs.Configs[canonical] = cfg
		}
	}
}

// Resolve computes the extension set a conversion of text would run with:
// the instance portion plus the document's first-line directive. The result
// is fresh on every call and never mutated in place.
func (m *Markup) Resolve(text string) *ResolvedExtensions {
	m.warnings = append(m.warnings[:0], m.baseWarnings...)
	rs := m.base.clone()
	m.applyTokens(rs, extcfg.DocumentExtensions(text))
	return rs
}

// Convert renders markdown text to HTML. The engine is configured fresh
// for documents carrying a Required-Extensions directive; directive-free
// documents share a cached engine built from the instance portion alone.
// Engine failures are returned wrapped in ErrConvert and never retried.
func (m *Markup) Convert(text string) (*ConvertedDocument, error) {
	m.warnings = append(m.warnings[:0], m.baseWarnings...)

	docTokens := extcfg.DocumentExtensions(text)
	rs := m.base.clone()
	m.applyTokens(rs, docTokens)

	var engine goldmark.Markdown
	if len(docTokens) == 0 {
		if m.baseEngine == nil {
			m.baseEngine = m.buildEngine(rs)
		}
		engine = m.baseEngine
	} else {
		engine = m.buildEngine(rs)
	}

	pc := parser.NewContext()
	var buf bytes.Buffer
	if err := engine.Convert([]byte(text), &buf, parser.WithContext(pc)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConvert, err)
	}

	doc := &ConvertedDocument{
		Body:            buf.String(),
		mathJaxWebURL:   m.settings.MathJax.WebURL,
		mathJaxLocalURL: m.settings.MathJax.LocalURL,
	}

	if rs.Active(ExtMeta) {
		doc.Title = metaext.Title(pc)
	}
	if doc.Title == "" && rs.Active(ExtFrontMatter) {
		doc.Title = frontMatterTitle(frontmatter.Get(pc))
	}

	stylesheet, err := m.stylesheet(rs)
	if err != nil {
		return nil, err
	}
	doc.Stylesheet = stylesheet

	return doc, nil
}

// buildEngine assembles a goldmark instance from the resolved set. A
// factory failure degrades to a skipped extension with a warning; it never
// aborts the conversion.
func (m *Markup) buildEngine(rs *ResolvedExtensions) goldmark.Markdown {
	extenders := make([]goldmark.Extender, 0, len(rs.Names))
	for _, name := range rs.sortedNames() {
		cfg := rs.Configs[name]
		if name == ExtCodeHilite || name == ExtHighlight {
			cfg = m.withDefaultStyle(cfg)
		}
		ext, err := m.registry.New(name, cfg)
		if err != nil {
			m.warn(err)
			continue
		}
		extenders = append(extenders, ext)
	}
	return goldmark.New(
		goldmark.WithExtensions(extenders...),
		goldmark.WithRendererOptions(
			// Raw HTML passes through, matching how markdown processors
			// traditionally treat inline HTML.
			ghtml.WithUnsafe(),
		),
	)
}

// withDefaultStyle injects the settings-level highlight style into a
// highlighting configuration that does not pick one itself.
func (m *Markup) withDefaultStyle(cfg ExtensionConfig) ExtensionConfig {
	if m.settings.Highlight.Style == "" {
		return cfg
	}
	if _, ok := cfg["pygments_style"]; ok {
		return cfg
	}
	out := make(ExtensionConfig, len(cfg)+1)
	for k, v := range cfg {
		out[k] = v
	}
	out["pygments_style"] = m.settings.Highlight.Style
	return out
}

// stylesheet derives the highlighting stylesheet for the resolved set, or
// an empty string when no highlighting extension is active.
func (m *Markup) stylesheet(rs *ResolvedExtensions) (string, error) {
	var name, class string
	switch {
	case rs.Active(ExtCodeHilite):
		name, class = ExtCodeHilite, defaultCodeHiliteClass
	case rs.Active(ExtHighlight):
		name, class = ExtHighlight, defaultHighlightClass
	default:
		return "", nil
	}

	cfg := m.withDefaultStyle(rs.Configs[name])
	return chromaStylesheet(
		configString(cfg, "css_class", class),
		configString(cfg, "pygments_style", defaultChromaStyle),
	)
}

// frontMatterTitle reads a title from YAML front matter metadata.
func frontMatterTitle(meta map[string]any) string {
	for _, key := range []string{"title", "Title"} {
		if v, ok := meta[key].(string); ok {
			return v
		}
	}
	return ""
}
