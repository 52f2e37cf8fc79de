// Package lang maps fenced-block language tags to file extensions and file
// extensions to syntax-highlighter identifiers. Both lookups are total:
// unrecognized input degrades to a fixed default instead of erroring.
package lang

import "strings"

const (
	// DefaultExtension is returned for unrecognized language tags.
	DefaultExtension = "js"
	// DefaultHighlighter is returned for unrecognized extensions.
	DefaultHighlighter = "plaintext"
)

// extByTag maps a fence language tag to a file extension.
var extByTag = map[string]string{
	"javascript": "js",
	"js":         "js",
	"jsx":        "jsx",
	"typescript": "ts",
	"ts":         "ts",
	"tsx":        "tsx",
	"css":        "css",
	"scss":       "scss",
	"html":       "html",
	"json":       "json",
	"markdown":   "md",
}

// highlighterByExt maps a file extension to the identifier the renderer's
// highlighter understands. Mirrors extByTag except html, which highlighters
// know as "markup".
var highlighterByExt = map[string]string{
	"js":   "javascript",
	"jsx":  "jsx",
	"ts":   "typescript",
	"tsx":  "tsx",
	"css":  "css",
	"scss": "scss",
	"html": "markup",
	"json": "json",
	"md":   "markdown",
}

// ExtensionFor returns the file extension for a fence language tag.
func ExtensionFor(tag string) string {
	if ext, ok := extByTag[strings.ToLower(tag)]; ok {
		return ext
	}
	return DefaultExtension
}

// LanguageFor returns the highlighter identifier for a file extension.
// The extension may be passed with or without a leading dot.
func LanguageFor(ext string) string {
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	if id, ok := highlighterByExt[ext]; ok {
		return id
	}
	return DefaultHighlighter
}
