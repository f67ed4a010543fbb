// Package md2html converts Markdown documents to HTML while letting each
// document choose which processing extensions are active.
//
// # Quick Start
//
// Create a markup instance and convert:
//
//	markup, err := md2html.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	doc, err := markup.Convert("# Hello\n\nWorld")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(doc.Body)
//
// The result carries the HTML body, the document title (when the meta
// extension is active), and a syntax-highlighting stylesheet (when a
// highlighting extension is active). doc.JavaScript(webEnv) returns the
// MathJax loader if the body contains math, or an empty string.
//
// # Extension Resolution
//
// Active extensions are merged from three sources, in order: the tokens
// passed to WithExtensions, the global markdown-extensions.txt lists (user
// configuration directory, then beside the source file), and the
// document's own first line when it reads
//
//	Required-Extensions: tables, toc(permalink=True)
//
// Tokens may carry literal keyword configuration in parentheses; nothing
// in a token is ever evaluated as code. Short names are canonicalized
// against the registry of installed extensions ("tables" becomes
// "goldmark.ext.tables"), and lookups are memoized process-wide.
//
// Two pseudo-extensions modify resolution itself: "mathjax" enables the
// inline dollar math delimiter, and "remove_extra" subtracts the default
// extras bundle and math extension from the set.
//
// Unknown extensions and malformed configuration are warnings, collected
// via Warnings() or a WithWarnFunc hook; the conversion still runs.
//
// # Conversion Engine
//
// Markdown parsing and rendering is delegated to Goldmark. Extensions
// resolve to goldmark extenders through an injectable Registry, so the
// resolution algorithm is testable without touching the real extension
// set.
package md2html
