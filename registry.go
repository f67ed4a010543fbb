package md2html

import (
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	frontmatter "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"

	"github.com/alnah/go-md2html/internal/extcfg"
	"github.com/alnah/go-md2html/internal/mathext"
	"github.com/alnah/go-md2html/internal/metaext"
	"github.com/alnah/go-md2html/internal/tocext"
)

// ExtensionConfig is the literal-only configuration mapping parsed from an
// extension token's argument list.
type ExtensionConfig = extcfg.Config

// Canonical extension names. Raw tokens resolve to these by probing the
// namespace prefixes in order, so "tables" becomes ExtTables and "math"
// becomes ExtMath without the caller spelling out the namespace.
const (
	ExtExtra         = "goldmark.ext.extra"
	ExtTables        = "goldmark.ext.tables"
	ExtDefList       = "goldmark.ext.def_list"
	ExtFootnotes     = "goldmark.ext.footnotes"
	ExtStrikethrough = "goldmark.ext.strikethrough"
	ExtTaskList      = "goldmark.ext.tasklist"
	ExtLinkify       = "goldmark.ext.linkify"
	ExtSmarty        = "goldmark.ext.smarty"
	ExtGFM           = "goldmark.ext.gfm"
	ExtNL2BR         = "goldmark.ext.nl2br"
	ExtMeta          = "goldmark.ext.meta"
	ExtFrontMatter   = "goldmark.ext.frontmatter"
	ExtTOC           = "goldmark.ext.toc"
	ExtCodeHilite    = "goldmark.ext.codehilite"
	ExtHighlight     = "mdx.highlight"
	ExtMath          = "mdx.math"
)

// namespacePrefixes is the ordered prefix list tried during
// canonicalization. The empty prefix comes first so fully-qualified names
// stay as written; engine extensions shadow legacy third-party names.
var namespacePrefixes = []string{"", "goldmark.ext.", "mdx."}

// Default wrapper classes and style for the highlighting extensions.
const (
	defaultCodeHiliteClass = "codehilite"
	defaultHighlightClass  = "highlight"
	defaultChromaStyle     = "github"
)

// Factory builds a goldmark extender from a parsed configuration.
type Factory func(cfg ExtensionConfig) (goldmark.Extender, error)

// Registry is the queryable namespace of installed extension factories.
// Resolution never loads anything dynamically; a name exists exactly when a
// factory was registered for it.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

// Register adds a factory under its canonical name, replacing any previous
// registration.
func (r *Registry) Register(canonicalName string, f Factory) {
	r.factories[canonicalName] = f
}

// Canonicalize resolves a raw extension name to its canonical form by
// trying each namespace prefix in order. The first prefix that names a
// registered factory wins.
func (r *Registry) Canonicalize(rawName string) (string, bool) {
	for _, prefix := range namespacePrefixes {
		if _, ok := r.factories[prefix+rawName]; ok {
			return prefix + rawName, true
		}
	}
	return "", false
}

// New builds the extender registered under a canonical name.
func (r *Registry) New(canonicalName string, cfg ExtensionConfig) (goldmark.Extender, error) {
	f, ok := r.factories[canonicalName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExtension, canonicalName)
	}
	return f(cfg)
}

// BuiltinRegistry returns a registry populated with every extension this
// module ships. Callers may register additional factories on the result.
func BuiltinRegistry() *Registry {
	r := NewRegistry()

	r.Register(ExtTables, static(extension.Table))
	r.Register(ExtDefList, static(extension.DefinitionList))
	r.Register(ExtFootnotes, static(extension.Footnote))
	r.Register(ExtStrikethrough, static(extension.Strikethrough))
	r.Register(ExtTaskList, static(extension.TaskList))
	r.Register(ExtLinkify, static(extension.Linkify))
	r.Register(ExtSmarty, static(extension.Typographer))
	r.Register(ExtGFM, static(extension.GFM))
	r.Register(ExtNL2BR, static(hardWrapsExtender{}))

	// The extras bundle: the constructs every document gets for free.
	r.Register(ExtExtra, static(compositeExtender{
		extension.Table,
		extension.DefinitionList,
		extension.Footnote,
	}))

	r.Register(ExtMeta, static(metaext.Meta))
	r.Register(ExtFrontMatter, static(frontmatter.Meta))

	r.Register(ExtTOC, func(cfg ExtensionConfig) (goldmark.Extender, error) {
		var opts []tocext.Option
		switch v := cfg["permalink"].(type) {
		case bool:
			opts = append(opts, tocext.WithPermalink(v))
		case string:
			opts = append(opts, tocext.WithPermalink(true), tocext.WithPermalinkText(v))
		}
		return tocext.New(opts...), nil
	})

	r.Register(ExtCodeHilite, highlightFactory(defaultCodeHiliteClass))
	r.Register(ExtHighlight, highlightFactory(defaultHighlightClass))

	r.Register(ExtMath, func(cfg ExtensionConfig) (goldmark.Extender, error) {
		enable := configBool(cfg, "enable_dollar_delimiter", false)
		return mathext.New(mathext.WithInlineDollar(enable)), nil
	})

	return r
}

// static wraps a configuration-free extender as a Factory.
func static(e goldmark.Extender) Factory {
	return func(ExtensionConfig) (goldmark.Extender, error) {
		return e, nil
	}
}

// compositeExtender applies several extenders as one.
type compositeExtender []goldmark.Extender

func (c compositeExtender) Extend(m goldmark.Markdown) {
	for _, e := range c {
		e.Extend(m)
	}
}

// hardWrapsExtender turns single newlines into <br> elements.
type hardWrapsExtender struct{}

func (hardWrapsExtender) Extend(m goldmark.Markdown) {
	m.Renderer().AddOptions(ghtml.WithHardWraps())
}

// highlightFactory builds the chroma-backed highlighting extension.
// Recognized keys: css_class (wrapper class prefix), pygments_style
// (chroma style name), guess_lang, linenums.
func highlightFactory(defaultClass string) Factory {
	return func(cfg ExtensionConfig) (goldmark.Extender, error) {
		class := configString(cfg, "css_class", defaultClass)
		style := configString(cfg, "pygments_style", defaultChromaStyle)

		formatOpts := []chromahtml.Option{
			chromahtml.WithClasses(true),
			chromahtml.ClassPrefix(class + "-"),
		}
		if configBool(cfg, "linenums", false) {
			formatOpts = append(formatOpts, chromahtml.WithLineNumbers(true))
		}

		return highlighting.NewHighlighting(
			highlighting.WithStyle(style),
			highlighting.WithGuessLanguage(configBool(cfg, "guess_lang", true)),
			highlighting.WithFormatOptions(formatOpts...),
		), nil
	}
}

// configString reads a string-valued configuration key.
func configString(cfg ExtensionConfig, key, fallback string) string {
	if v, ok := cfg[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// configBool reads a bool-valued configuration key.
func configBool(cfg ExtensionConfig, key string, fallback bool) bool {
	if v, ok := cfg[key].(bool); ok {
		return v
	}
	return fallback
}
